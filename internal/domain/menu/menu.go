package menu

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
)

// Period names a meal service with its own menu.
type Period string

const (
	Breakfast Period = "breakfast"
	Lunch     Period = "lunch"
	Dinner    Period = "dinner"
)

// DefaultPeriod is served when no period is requested.
const DefaultPeriod = Breakfast

// Item is one dish with a display price.
type Item struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Category groups dishes under a heading.
type Category struct {
	Name  string
	Items []Item
}

// Menu is an ordered list of categories. It encodes as a JSON object keyed by
// category name, keeping category order.
type Menu []Category

// MarshalJSON implements json.Marshaler.
func (m Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		items, err := json.Marshal(cat.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Catalog is an immutable set of menus keyed by period.
type Catalog struct {
	menus map[Period]Menu
	order []Period
}

// DefaultCatalog returns the restaurant's fixed menus.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[Period]Menu{
		Breakfast: {
			{Name: "Pancakes", Items: []Item{
				{Name: "Classic Buttermilk", Price: "12.99", Description: "Light and fluffy buttermilk pancakes served with maple syrup"},
				{Name: "Chocolate Chip", Price: "14.99", Description: "Buttermilk pancakes loaded with chocolate chips"},
				{Name: "Blueberry", Price: "14.99", Description: "Fresh blueberries folded into our signature batter"},
			}},
			{Name: "Sides", Items: []Item{
				{Name: "Bacon", Price: "4.99", Description: "Crispy applewood smoked bacon"},
				{Name: "Sausage", Price: "4.99", Description: "Premium pork breakfast sausage"},
				{Name: "Ham", Price: "4.99", Description: "Thick-cut honey ham"},
			}},
		},
		Lunch: {
			{Name: "Sandwiches", Items: []Item{
				{Name: "Classic Club", Price: "15.99", Description: "Triple-decker with turkey, bacon, lettuce, and tomato"},
				{Name: "Grilled Chicken", Price: "14.99", Description: "Marinated chicken breast with avocado and chipotle aioli"},
			}},
			{Name: "Salads", Items: []Item{
				{Name: "Caesar", Price: "12.99", Description: "Romaine, parmesan, croutons, and house-made dressing"},
				{Name: "Garden", Price: "11.99", Description: "Mixed greens, vegetables, and balsamic vinaigrette"},
			}},
		},
		Dinner: {
			{Name: "Entrees", Items: []Item{
				{Name: "Grilled Salmon", Price: "24.99", Description: "Fresh Atlantic salmon with lemon herb butter"},
				{Name: "NY Strip Steak", Price: "29.99", Description: "12oz certified Angus beef with garlic herb butter"},
			}},
			{Name: "Sides", Items: []Item{
				{Name: "Roasted Potatoes", Price: "5.99", Description: "Herb-seasoned baby potatoes"},
				{Name: "Seasonal Vegetables", Price: "5.99", Description: "Chef's selection of fresh vegetables"},
			}},
		},
	}, Breakfast, Lunch, Dinner)
}

// NewCatalog builds a catalog from menus. order lists the periods for Periods.
func NewCatalog(menus map[Period]Menu, order ...Period) *Catalog {
	c := &Catalog{menus: make(map[Period]Menu, len(menus))}
	for p, m := range menus {
		c.menus[p] = cloneMenu(m)
	}
	c.order = append(c.order, order...)
	return c
}

// Periods lists the periods with a menu.
func (c *Catalog) Periods() []Period {
	return append([]Period(nil), c.order...)
}

// Lookup returns a copy of the menu for period. An empty period means DefaultPeriod.
func (c *Catalog) Lookup(period string) (Menu, error) {
	key := Period(strings.ToLower(strings.TrimSpace(period)))
	if key == "" {
		key = DefaultPeriod
	}
	m, ok := c.menus[key]
	if !ok {
		return nil, domain.NewValidationError("Invalid menu type")
	}
	return cloneMenu(m), nil
}

func cloneMenu(m Menu) Menu {
	out := make(Menu, len(m))
	for i, cat := range m {
		out[i] = Category{Name: cat.Name, Items: append([]Item(nil), cat.Items...)}
	}
	return out
}
