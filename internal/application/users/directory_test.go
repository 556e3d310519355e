package users

import (
	"context"
	"testing"

	"github.com/baechuer/user-directory/internal/domain"
)

func TestListAll_ReturnsEveryRecord(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest()
	repo.add(domain.User{Email: "a@x.com", Name: "A"})
	repo.add(domain.User{Email: "b@x.com", Name: "B"})

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}

func TestUpdateByID_UnknownID_NeverCreates(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest()

	name := "B"
	_, err := svc.UpdateByID(context.Background(), "nope", domain.UserUpdate{Name: &name})
	requireDomainCode(t, err, domainCode(domain.ErrUserNotFound()))
	if len(repo.byID) != 0 {
		t.Fatalf("update must never create a record, store has %d", len(repo.byID))
	}
}

func TestUpdateByID_EmptyBody_Rejected(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest()
	u := repo.add(domain.User{Email: "a@x.com", Name: "A"})

	_, err := svc.UpdateByID(context.Background(), u.ID, domain.UserUpdate{})
	requireDomainCode(t, err, "invalid_field")
}

func TestUpdateByID_PartialOverwrite(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest()
	u := repo.add(domain.User{Email: "a@x.com", Name: "A", Phone: "1", Profession: "dev"})

	phone := "42"
	updated, err := svc.UpdateByID(context.Background(), u.ID, domain.UserUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if updated.Phone != "42" {
		t.Fatalf("expected phone overwritten, got %+v", updated)
	}
	if updated.Name != "A" || updated.Email != "a@x.com" {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}
}

func TestDeleteByID_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest()
	u := repo.add(domain.User{Email: "a@x.com", Name: "A"})

	snap, err := svc.DeleteByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if snap.Email != "a@x.com" {
		t.Fatalf("expected deleted snapshot, got %+v", snap)
	}
	if _, err := svc.GetByID(context.Background(), u.ID); !domain.Is(err, "user_not_found") {
		t.Fatalf("expected record gone, got %v", err)
	}
}

func TestDeleteByID_UnknownID(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest()

	_, err := svc.DeleteByID(context.Background(), "nope")
	requireDomainCode(t, err, domainCode(domain.ErrUserNotFound()))
}
