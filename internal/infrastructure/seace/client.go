package seace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/config"
)

var _ usecase.RequirementLookup = (*Client)(nil)

// Client consulta el buscador público de procedimientos del SEACE/OSCE para
// prellenar la referencia documental de un proceso. Usa net/http de la stdlib;
// el servicio expone JSON plano y no requiere autenticación.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout de red generoso, el buscador
// público del SEACE puede tardar varios segundos en responder.
func NewClient(cfg config.SEACEConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// requirementPayload respuesta cruda del buscador.
type requirementPayload struct {
	Numero      string `json:"numero"`
	Anio        int    `json:"anio"`
	Entidad     string `json:"entidad"`
	Descripcion string `json:"descripcion"`
	Documento   string `json:"documento"`
}

// Lookup consulta un requerimiento por año y número. Devuelve error si el
// servicio no responde o la respuesta no es interpretable; el llamador decide
// qué hacer (la consulta es de conveniencia, nunca bloquea el registro).
func (c *Client) Lookup(ctx context.Context, year int, number string) (*entity.Requirement, error) {
	endpoint := fmt.Sprintf("%s/requerimientos?anio=%s&numero=%s",
		c.baseURL, strconv.Itoa(year), url.QueryEscape(number))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("armar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar SEACE: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consultar SEACE: status %d", resp.StatusCode)
	}

	var payload requirementPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decodificar respuesta SEACE: %w", err)
	}
	return &entity.Requirement{
		Number:      payload.Numero,
		Year:        payload.Anio,
		EntityName:  payload.Entidad,
		Description: payload.Descripcion,
		DocumentRef: payload.Documento,
	}, nil
}
