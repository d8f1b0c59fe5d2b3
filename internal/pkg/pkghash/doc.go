// Package pkghash hashes and verifies secrets such as user passwords.
package pkghash
