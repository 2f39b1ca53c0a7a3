package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/hmtran/pqgo/internal/calculation"
	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/internal/ratetable"
)

func testServer() *Server {
	table := ratetable.Build([]domain.RateRecord{
		{
			Age:          25,
			Benefit:      domain.MainBenefit,
			ContractType: domain.Independent,
			Gender:       domain.GenderFemale,
			Packages:     []string{"963,000", "1,152,000", "1,423,000", "1,768,000", "2,194,000"},
		},
	})
	return New(calculation.NewEngine(table))
}

func doRequest(s *Server, method, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(ctx)
	return ctx
}

func TestHandleQuote_Success(t *testing.T) {
	body := `{
		"reference_date": "20/02/2026",
		"household": [
			{"name": "An", "date_of_birth": "20/02/2001", "gender": "female", "package": "3"}
		]
	}`

	ctx := doRequest(testServer(), fasthttp.MethodPost, "/api/v1/quote", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp struct {
		QuoteID    string `json:"quote_id"`
		GrandTotal string `json:"grand_total"`
		Persons    []struct {
			Age         int     `json:"age"`
			Independent bool    `json:"independent"`
			MainRate    *string `json:"main_rate"`
			Total       string  `json:"total"`
		} `json:"persons"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.NotEmpty(t, resp.QuoteID, "Each served quote carries a reference ID")
	assert.Equal(t, "1423000", resp.GrandTotal)
	require.Len(t, resp.Persons, 1)
	assert.Equal(t, 25, resp.Persons[0].Age)
	assert.True(t, resp.Persons[0].Independent)
	require.NotNil(t, resp.Persons[0].MainRate)
	assert.Equal(t, "1423000", *resp.Persons[0].MainRate)
}

func TestHandleQuote_DefaultsReferenceDateToToday(t *testing.T) {
	body := `{"household": [{"date_of_birth": "bogus", "gender": "female", "package": "1"}]}`

	ctx := doRequest(testServer(), fasthttp.MethodPost, "/api/v1/quote", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp struct {
		GrandTotal string `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "0", resp.GrandTotal, "Malformed person input still yields a valid zero quote")
}

func TestHandleQuote_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"Wrong method", fasthttp.MethodGet, "", fasthttp.StatusMethodNotAllowed},
		{"Invalid JSON", fasthttp.MethodPost, "{not json", fasthttp.StatusBadRequest},
		{"Empty household", fasthttp.MethodPost, `{"household": []}`, fasthttp.StatusBadRequest},
		{"Bad reference date", fasthttp.MethodPost, `{"reference_date": "2026-02-20", "household": [{"package": "1"}]}`, fasthttp.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(testServer(), tt.method, "/api/v1/quote", tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.Equal(t, tt.status, resp.Status)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	ctx := doRequest(testServer(), fasthttp.MethodGet, "/healthz", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status": "ok"}`, string(ctx.Response.Body()))
}

func TestHandler_UnknownPath(t *testing.T) {
	ctx := doRequest(testServer(), fasthttp.MethodGet, "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
