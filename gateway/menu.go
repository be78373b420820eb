package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nakhazaman/restaurant-foh/models"
)

// ListMenuItems mengambil item menu, opsional difilter per kategori.
func (c *Client) ListMenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	path := "/menu/items"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var items []models.MenuItem
	if _, err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	if _, err := c.do(ctx, http.MethodGet, "/menu/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryUpsert adalah body create/update kategori (halaman admin).
type CategoryUpsert struct {
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

// MenuItemUpsert adalah body create/update item menu (halaman admin).
type MenuItemUpsert struct {
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

func (c *Client) CreateCategory(ctx context.Context, token string, req CategoryUpsert) (*models.MenuCategory, string, error) {
	var category models.MenuCategory
	message, err := c.do(ctx, http.MethodPost, "/menu/categories", token, req, &category)
	if err != nil {
		return nil, message, err
	}
	return &category, message, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, categoryID string, req CategoryUpsert) (*models.MenuCategory, string, error) {
	var category models.MenuCategory
	message, err := c.do(ctx, http.MethodPut, "/menu/categories/"+url.PathEscape(categoryID), token, req, &category)
	if err != nil {
		return nil, message, err
	}
	return &category, message, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, categoryID string) (string, error) {
	return c.do(ctx, http.MethodDelete, "/menu/categories/"+url.PathEscape(categoryID), token, nil, nil)
}

func (c *Client) CreateMenuItem(ctx context.Context, token string, req MenuItemUpsert) (*models.MenuItem, string, error) {
	var item models.MenuItem
	message, err := c.do(ctx, http.MethodPost, "/menu/items", token, req, &item)
	if err != nil {
		return nil, message, err
	}
	return &item, message, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, token, itemID string, req MenuItemUpsert) (*models.MenuItem, string, error) {
	var item models.MenuItem
	message, err := c.do(ctx, http.MethodPut, "/menu/items/"+url.PathEscape(itemID), token, req, &item)
	if err != nil {
		return nil, message, err
	}
	return &item, message, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, token, itemID string) (string, error) {
	return c.do(ctx, http.MethodDelete, "/menu/items/"+url.PathEscape(itemID), token, nil, nil)
}
