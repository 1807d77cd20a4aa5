package service

import (
	"errors"
	"testing"

	"github.com/fresh-groceries/internal/constants"
)

func TestFeedbackSubmitRules(t *testing.T) {
	env := newTestEnv(t)
	order := env.placeOrder(t, env.customer.ID)

	input := SubmitFeedbackInput{UserID: env.customer.ID, OrderID: order.ID, Rating: 5, Comment: "fresh"}
	if _, err := env.feedback.Submit(input); !errors.Is(err, ErrFeedbackNotAllowed) {
		t.Fatalf("expected ErrFeedbackNotAllowed before delivery, got %v", err)
	}

	if _, err := env.order.AssignToCourier(order.ID, env.courierA.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if _, err := env.order.SetStatus(Actor{UserID: env.courierA.ID, Role: constants.RoleCourier}, order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("deliver failed: %v", err)
	}

	bad := input
	bad.Rating = 6
	if _, err := env.feedback.Submit(bad); !errors.Is(err, ErrFeedbackRatingInvalid) {
		t.Fatalf("expected ErrFeedbackRatingInvalid, got %v", err)
	}
	foreign := input
	foreign.UserID = env.courierB.ID
	if _, err := env.feedback.Submit(foreign); !errors.Is(err, ErrOrderForbidden) {
		t.Fatalf("expected ErrOrderForbidden, got %v", err)
	}

	created, err := env.feedback.Submit(input)
	if err != nil {
		t.Fatalf("submit feedback failed: %v", err)
	}
	if created.Rating != 5 || created.Comment != "fresh" {
		t.Fatalf("unexpected feedback: %+v", created)
	}
	if _, err := env.feedback.Submit(input); !errors.Is(err, ErrFeedbackExists) {
		t.Fatalf("expected ErrFeedbackExists, got %v", err)
	}

	got, err := env.feedback.GetForOrder(Actor{UserID: 1, Role: constants.RoleAdmin}, order.ID)
	if err != nil {
		t.Fatalf("get feedback failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected feedback id %d", got.ID)
	}
}

func TestFeedbackGetMissing(t *testing.T) {
	env := newTestEnv(t)
	order := env.placeOrder(t, env.customer.ID)
	owner := Actor{UserID: env.customer.ID, Role: constants.RoleUser}
	if _, err := env.feedback.GetForOrder(owner, order.ID); !errors.Is(err, ErrFeedbackNotFound) {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
	if _, err := env.feedback.GetForOrder(owner, 9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
