package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSpeciesCreate_NormalizesNameAndRejectsDuplicates(t *testing.T) {
	db := newServiceDB(t)
	svc := &SpeciesService{DB: db}
	ctx := context.Background()

	sp, err := svc.Create(ctx, "cachorro", "https://img.example/dog.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sp.Name != "Cachorro" {
		t.Fatalf("name not normalized: %q", sp.Name)
	}
	// The normalized form collides with any casing of the same name.
	if _, err := svc.Create(ctx, "Cachorro", ""); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestSpeciesGet_NotFoundAndIncludeInactive(t *testing.T) {
	db := newServiceDB(t)
	svc := &SpeciesService{DB: db}
	ctx := context.Background()

	if _, err := svc.Get(ctx, uuid.NewString(), false); !errors.Is(err, ErrSpeciesNotFound) {
		t.Fatalf("expected ErrSpeciesNotFound, got %v", err)
	}

	sp, err := svc.Create(ctx, "gato", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SetActive(ctx, sp.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Get(ctx, sp.ID, false); !errors.Is(err, ErrSpeciesNotFound) {
		t.Fatalf("inactive row must be hidden by default, got %v", err)
	}
	got, err := svc.Get(ctx, sp.ID, true)
	if err != nil {
		t.Fatalf("inactive-inclusive get: %v", err)
	}
	if !got.DeletedAt.Valid {
		t.Fatalf("expected DeletedAt set: %+v", got)
	}

	// Restore round trip.
	if err := svc.SetActive(ctx, sp.ID, true); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := svc.Get(ctx, sp.ID, false); err != nil {
		t.Fatalf("restored species must be visible: %v", err)
	}
}

func TestSpeciesUpdate_NotFound(t *testing.T) {
	db := newServiceDB(t)
	svc := &SpeciesService{DB: db}
	if err := svc.Update(context.Background(), uuid.NewString(), "Novo", ""); !errors.Is(err, ErrSpeciesNotFound) {
		t.Fatalf("expected ErrSpeciesNotFound, got %v", err)
	}
}

func TestGiftCRUD_ListByNamePrefix(t *testing.T) {
	db := newServiceDB(t)
	svc := &GiftService{DB: db}
	ctx := context.Background()

	if _, err := svc.Create(ctx, "coleira", "para passeios", ""); err != nil {
		t.Fatalf("Create coleira: %v", err)
	}
	if _, err := svc.Create(ctx, "comedouro", "", ""); err != nil {
		t.Fatalf("Create comedouro: %v", err)
	}
	if _, err := svc.Create(ctx, "arranhador", "", ""); err != nil {
		t.Fatalf("Create arranhador: %v", err)
	}

	// Prefix is normalized the same way names are.
	gifts, err := svc.List(ctx, "co", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("prefix 'co': expected 2 gifts, got %d", len(gifts))
	}

	if _, err := svc.Get(ctx, uuid.NewString(), false); !errors.Is(err, ErrGiftNotFound) {
		t.Fatalf("expected ErrGiftNotFound, got %v", err)
	}
}

func TestGiftSetActive_RoundTrip(t *testing.T) {
	db := newServiceDB(t)
	svc := &GiftService{DB: db}
	ctx := context.Background()

	g, err := svc.Create(ctx, "caminha", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SetActive(ctx, g.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Get(ctx, g.ID, false); !errors.Is(err, ErrGiftNotFound) {
		t.Fatalf("inactive gift must be hidden, got %v", err)
	}
	if err := svc.SetActive(ctx, g.ID, true); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := svc.Get(ctx, g.ID, false); err != nil {
		t.Fatalf("restored gift must be visible: %v", err)
	}
}

func TestOngCreate_UpperCasesUFAndCoverage(t *testing.T) {
	db := newServiceDB(t)
	svc := &OngService{DB: db}
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOngInput{
		Name:     "Patas Felizes",
		Email:    "contato@patas.org",
		UF:       "sp",
		Coverage: "sp rj",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.UF != "SP" || o.Coverage != "SP RJ" {
		t.Fatalf("uf/coverage not normalized: %+v", o)
	}
}

func TestOngList_FilterByUF(t *testing.T) {
	db := newServiceDB(t)
	svc := &OngService{DB: db}
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateOngInput{Name: "A", Email: "a@ong.org", UF: "SP"}); err != nil {
		t.Fatalf("Create A: %v", err)
	}
	if _, err := svc.Create(ctx, CreateOngInput{Name: "B", Email: "b@ong.org", UF: "MG"}); err != nil {
		t.Fatalf("Create B: %v", err)
	}

	ongs, err := svc.List(ctx, "sp", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ongs) != 1 || ongs[0].UF != "SP" {
		t.Fatalf("uf filter: expected the SP shelter, got %d rows", len(ongs))
	}
}

func TestOngSetActive_NotFound(t *testing.T) {
	db := newServiceDB(t)
	svc := &OngService{DB: db}
	if err := svc.SetActive(context.Background(), uuid.NewString(), false); !errors.Is(err, ErrOngNotFound) {
		t.Fatalf("expected ErrOngNotFound, got %v", err)
	}
}

func TestPartnerCRUD_ListFilters(t *testing.T) {
	db := newServiceDB(t)
	svc := &PartnerService{DB: db}
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreatePartnerInput{
		FantasyName: "PetLove",
		CompanyName: "PetLove LTDA",
		Cnpj:        "00.000.000/0001-00",
		Email:       "a@petlove.com",
		UF:          "sp",
	}); err != nil {
		t.Fatalf("Create PetLove: %v", err)
	}
	if _, err := svc.Create(ctx, CreatePartnerInput{
		FantasyName: "RacaoMax",
		CompanyName: "RacaoMax SA",
		Cnpj:        "11.111.111/0001-11",
		Email:       "b@racaomax.com",
		UF:          "MG",
	}); err != nil {
		t.Fatalf("Create RacaoMax: %v", err)
	}

	byName, err := svc.List(ctx, "Pet", "", false)
	if err != nil {
		t.Fatalf("List by name: %v", err)
	}
	if len(byName) != 1 || byName[0].FantasyName != "PetLove" {
		t.Fatalf("name prefix filter: got %d rows", len(byName))
	}

	byUF, err := svc.List(ctx, "", "mg", false)
	if err != nil {
		t.Fatalf("List by uf: %v", err)
	}
	if len(byUF) != 1 || byUF[0].FantasyName != "RacaoMax" {
		t.Fatalf("uf filter: got %d rows", len(byUF))
	}

	if _, err := svc.Get(ctx, uuid.NewString(), false); !errors.Is(err, ErrPartnerNotFound) {
		t.Fatalf("expected ErrPartnerNotFound, got %v", err)
	}
}

func TestPartnerUpdate_AndSetActive(t *testing.T) {
	db := newServiceDB(t)
	svc := &PartnerService{DB: db}
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePartnerInput{
		FantasyName: "VetPlus",
		CompanyName: "VetPlus ME",
		Cnpj:        "22.222.222/0001-22",
		Email:       "c@vetplus.com",
		UF:          "SP",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Update(ctx, p.ID, CreatePartnerInput{City: "Campinas"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := svc.Get(ctx, p.ID, false)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.City != "Campinas" || got.FantasyName != "VetPlus" {
		t.Fatalf("partial update mismatch: %+v", got)
	}

	if err := svc.SetActive(ctx, p.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID, false); !errors.Is(err, ErrPartnerNotFound) {
		t.Fatalf("inactive partner must be hidden, got %v", err)
	}
	if err := svc.SetActive(ctx, p.ID, true); err != nil {
		t.Fatalf("restore: %v", err)
	}
}
