package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/miaudote/go-adopt-backend/internal/repo"
)

func TestFavorite_SuccessAndDuplicate(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &FavoriteService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")
	pet := seedSvcPet(t, db, spID, ongID, nil)

	f, err := svc.Favorite(ctx, "u1", pet.ID)
	if err != nil {
		t.Fatalf("Favorite: %v", err)
	}
	if f.ID == "" || f.UserID != "u1" || f.PetID != pet.ID {
		t.Fatalf("unexpected favorite: %+v", f)
	}
	if _, err := svc.Favorite(ctx, "u1", pet.ID); !errors.Is(err, ErrAlreadyFavorited) {
		t.Fatalf("expected ErrAlreadyFavorited, got %v", err)
	}
}

func TestFavorite_InvisiblePetsLookMissing(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &FavoriteService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")

	// Missing pet.
	if _, err := svc.Favorite(ctx, "u1", uuid.NewString()); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("missing: expected ErrPetNotFound, got %v", err)
	}

	// Adopted pet.
	adopted := seedSvcPet(t, db, spID, ongID, nil)
	if _, err := pets.Adopt(ctx, "u9", adopted.ID); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if _, err := svc.Favorite(ctx, "u1", adopted.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("adopted: expected ErrPetNotFound, got %v", err)
	}

	// Disliked pet: hidden for this user only.
	disliked := seedSvcPet(t, db, spID, ongID, nil)
	if _, err := repo.CreateDislike(ctx, db, "u1", disliked.ID); err != nil {
		t.Fatalf("seed dislike: %v", err)
	}
	if _, err := svc.Favorite(ctx, "u1", disliked.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("disliked: expected ErrPetNotFound, got %v", err)
	}
	if _, err := svc.Favorite(ctx, "u2", disliked.ID); err != nil {
		t.Fatalf("other user should still favorite: %v", err)
	}

	// Inactive pet.
	inactive := seedSvcPet(t, db, spID, ongID, nil)
	if err := pets.SetActive(ctx, inactive.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Favorite(ctx, "u1", inactive.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("inactive: expected ErrPetNotFound, got %v", err)
	}
}

func TestUnfavorite_MissingPair(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &FavoriteService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")
	pet := seedSvcPet(t, db, spID, ongID, nil)

	if err := svc.Unfavorite(ctx, "u1", pet.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
	if _, err := svc.Favorite(ctx, "u1", pet.ID); err != nil {
		t.Fatalf("Favorite: %v", err)
	}
	if err := svc.Unfavorite(ctx, "u1", pet.ID); err != nil {
		t.Fatalf("Unfavorite: %v", err)
	}
	// The pair is gone for good; favoriting again works.
	if _, err := svc.Favorite(ctx, "u1", pet.ID); err != nil {
		t.Fatalf("re-favorite after unfavorite: %v", err)
	}
}

func TestListMine_ReturnsPetRows(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &FavoriteService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")
	pet := seedSvcPet(t, db, spID, ongID, nil)

	if _, err := svc.Favorite(ctx, "u1", pet.ID); err != nil {
		t.Fatalf("Favorite: %v", err)
	}
	favs, err := svc.ListMine(ctx, "u1")
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(favs) != 1 || favs[0].Pet.ID != pet.ID {
		t.Fatalf("expected one favorite with pet attached, got %+v", favs)
	}
	// Other users see nothing.
	empty, err := svc.ListMine(ctx, "u2")
	if err != nil {
		t.Fatalf("ListMine u2: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("favorites are user-scoped, got %d rows", len(empty))
	}
}

func TestDislike_SuccessDuplicateAndVisibility(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &DislikeService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")
	pet := seedSvcPet(t, db, spID, ongID, nil)

	d, err := svc.Dislike(ctx, "u1", pet.ID)
	if err != nil {
		t.Fatalf("Dislike: %v", err)
	}
	if d.UserID != "u1" || d.PetID != pet.ID {
		t.Fatalf("unexpected dislike: %+v", d)
	}

	// The pet is already hidden from this user, so the second attempt resolves
	// as missing rather than duplicate.
	if _, err := svc.Dislike(ctx, "u1", pet.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("re-dislike of hidden pet: expected ErrPetNotFound, got %v", err)
	}

	ids, err := svc.ExcludedPetIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("ExcludedPetIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != pet.ID {
		t.Fatalf("unexpected exclusion set: %v", ids)
	}

	// Another user can still dislike the same pet.
	if _, err := svc.Dislike(ctx, "u2", pet.ID); err != nil {
		t.Fatalf("other user dislike: %v", err)
	}
}

func TestDislike_InvisiblePet(t *testing.T) {
	db := newServiceDB(t)
	pets := &PetService{DB: db}
	svc := &DislikeService{DB: db, Pets: pets}
	ctx := context.Background()
	spID, ongID := seedSvcRefs(t, db, "SP")

	if _, err := svc.Dislike(ctx, "u1", uuid.NewString()); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("missing pet: expected ErrPetNotFound, got %v", err)
	}

	adopted := seedSvcPet(t, db, spID, ongID, nil)
	if _, err := pets.Adopt(ctx, "u9", adopted.ID); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if _, err := svc.Dislike(ctx, "u1", adopted.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("adopted pet: expected ErrPetNotFound, got %v", err)
	}
}
