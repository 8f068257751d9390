package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/services"
)

func newPartnerHandlers(p PartnerService) *Handlers {
	return New(stubPetSvc{}, stubFavSvc{}, stubDislikeSvc{}, stubSpeciesSvc{}, stubGiftSvc{}, stubOngSvc{}, p)
}

func TestCreatePartner_Validation_And_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// fantasy_name, cnpj and email are required
	{
		h := newPartnerHandlers(stubPartnerSvc{})
		r := gin.New()
		r.POST("/partners", h.CreatePartner)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/partners", bytesReader(`{"fantasy_name":"PetShop","email":"x@y.z"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing cnpj -> %d", w.Code)
		}
	}

	// success -> 201, payload lands in the service input
	{
		var got services.CreatePartnerInput
		h := newPartnerHandlers(stubPartnerSvc{
			create: func(ctx context.Context, in services.CreatePartnerInput) (*domain.Partner, error) {
				got = in
				return &domain.Partner{ID: "pa1", FantasyName: in.FantasyName}, nil
			},
		})
		r := gin.New()
		r.POST("/partners", h.CreatePartner)

		body := `{"fantasy_name":"PetShop do Zé","company_name":"Zé LTDA","cnpj":"12.345.678/0001-00","email":"ze@petshop.com","uf":"mg"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/partners", bytesReader(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		if got.FantasyName != "PetShop do Zé" || got.Cnpj != "12.345.678/0001-00" || got.UF != "mg" {
			t.Fatalf("input mismatch: %#v", got)
		}
	}
}

func TestPartner_List_Get_Update_SetActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// list forwards both filters
	{
		var got struct{ fantasy, uf string }
		h := newPartnerHandlers(stubPartnerSvc{
			list: func(ctx context.Context, fantasy, uf string, inc bool) ([]domain.Partner, error) {
				got.fantasy, got.uf = fantasy, uf
				return []domain.Partner{{ID: "pa1", FantasyName: "PetShop"}}, nil
			},
		})
		r := gin.New()
		r.GET("/partners", h.ListPartners)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partners?fantasyName=pet&uf=MG", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("list -> %d", w.Code)
		}
		if got.fantasy != "pet" || got.uf != "MG" {
			t.Fatalf("filter mismatch: %+v", got)
		}
		var out []domain.Partner
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("unexpected partners: %#v", out)
		}
	}

	// get not found -> 404
	{
		h := newPartnerHandlers(stubPartnerSvc{
			get: func(context.Context, string, bool) (*domain.Partner, error) {
				return nil, services.ErrPartnerNotFound
			},
		})
		r := gin.New()
		r.GET("/partners/:id", h.GetPartner)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partners/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("not found -> %d", w.Code)
		}
	}

	// update not found -> 404
	{
		h := newPartnerHandlers(stubPartnerSvc{
			update: func(context.Context, string, services.CreatePartnerInput) error {
				return services.ErrPartnerNotFound
			},
		})
		r := gin.New()
		r.PUT("/partners/:id", h.UpdatePartner)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/partners/nope", bytesReader(`{"fantasy_name":"x"}`)))
		if w.Code != http.StatusNotFound {
			t.Fatalf("not found -> %d", w.Code)
		}
	}

	// set-active success -> 204
	{
		h := newPartnerHandlers(stubPartnerSvc{})
		r := gin.New()
		r.PATCH("/partners/:id/active", h.SetPartnerActive)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/partners/pa2/active", bytesReader(`{"active":true}`)))
		if w.Code != http.StatusNoContent {
			t.Fatalf("204 -> %d", w.Code)
		}
	}
}

func bytesReader(s string) *bytes.Buffer { return bytes.NewBufferString(s) }
