package httpserver

// product is one storefront card. Name and price travel as strings on the
// add-to-cart control, exactly what the cart store parses.
type product struct {
	ID    string
	Name  string
	Price string
}

var products = []product{
	{ID: "1", Name: "Coffee Mug", Price: "9.99"},
	{ID: "2", Name: "Ballpoint Pen", Price: "1.50"},
	{ID: "3", Name: "Notebook", Price: "4.25"},
	{ID: "4", Name: "Tote Bag", Price: "14.00"},
	{ID: "5", Name: "Water Bottle", Price: "11.75"},
	{ID: "6", Name: "Desk Plant", Price: "7.80"},
}
