package category

import "context"

// Category is a fixed reference entry; the list is not user-extensible in
// this version.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Defaults is the stock category list seeded on first run.
func Defaults() []Category {
	return []Category{
		{ID: "1", Name: "Comida", Icon: "🍕", Color: "#f59e0b"},
		{ID: "2", Name: "Transporte", Icon: "🚗", Color: "#3b82f6"},
		{ID: "3", Name: "Entretenimiento", Icon: "🎬", Color: "#8b5cf6"},
		{ID: "4", Name: "Salud", Icon: "🏥", Color: "#10b981"},
		{ID: "5", Name: "Compras", Icon: "🛍️", Color: "#ef4444"},
		{ID: "6", Name: "Servicios", Icon: "💡", Color: "#f97316"},
		{ID: "7", Name: "Educación", Icon: "📚", Color: "#06b6d4"},
		{ID: "8", Name: "Otros", Icon: "📦", Color: "#6b7280"},
	}
}

type Repository interface {
	List(ctx context.Context) ([]Category, error)
}
