package entity

type Product struct {
	ID         string
	Name       string
	Price      float64
	Categories string
	Page       string
	Image      string
}
