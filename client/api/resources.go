package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Resource is a typed handle on one REST collection. T is the wire
// representation of a single record.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a collection path like "/api/clients/".
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

func (r *Resource[T]) List(ctx context.Context, filter url.Values) ([]T, error) {
	var items []T
	if err := r.client.read(ctx, r.path, filter, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id uint) (T, error) {
	var item T
	err := r.client.read(ctx, fmt.Sprintf("%s%d/", r.path, id), nil, &item)
	return item, err
}

func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (T, error) {
	var item T
	err := r.client.do(ctx, http.MethodPost, r.path, nil, payload, &item)
	return item, err
}

func (r *Resource[T]) Update(ctx context.Context, id uint, payload interface{}) (T, error) {
	var item T
	err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("%s%d/", r.path, id), nil, payload, &item)
	return item, err
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", r.path, id), nil, nil, nil)
}

// LoginUser is the account block of a successful login response.
type LoginUser struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// Login authenticates and keeps the returned token on the client for
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/login/", nil, body, &resp); err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

// Dashboard mirrors /api/analytics/dashboard/.
type Dashboard struct {
	Expeditions struct {
		Total   int `json:"total"`
		EnCours int `json:"en_cours"`
		Livrees int `json:"livrees"`
		CeMois  int `json:"ce_mois"`
	} `json:"expeditions"`
	Financier struct {
		ChiffreAffaires  decimal.Decimal `json:"chiffre_affaires"`
		FacturesImpayees decimal.Decimal `json:"factures_impayees"`
	} `json:"financier"`
	TopClients []struct {
		ID            uint   `json:"id"`
		Nom           string `json:"nom"`
		NbExpeditions int    `json:"nb_expeditions"`
	} `json:"top_clients"`
	TopDestinations []struct {
		ID            uint   `json:"id"`
		Ville         string `json:"ville"`
		Pays          string `json:"pays"`
		NbExpeditions int    `json:"nb_expeditions"`
	} `json:"top_destinations"`
	IncidentsOuverts      int `json:"incidents_ouverts"`
	ReclamationsNouvelles int `json:"reclamations_nouvelles"`
}

type TrendPoint struct {
	Mois        string `json:"mois"`
	Expeditions int    `json:"expeditions"`
	MoisComplet string `json:"mois_complet"`
}

type StatusCount struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Statut string `json:"statut"`
}

func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := c.read(ctx, "/api/analytics/dashboard/", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ExpeditionTrend(ctx context.Context) ([]TrendPoint, error) {
	var points []TrendPoint
	if err := c.read(ctx, "/api/analytics/expedition_trend/", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	if err := c.read(ctx, "/api/analytics/status_distribution/", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
