package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

func TestGoalCRUD(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/goals":
			_ = json.NewEncoder(w).Encode(types.ListGoalsResponse{Goals: []types.Goal{{ID: "g1"}}, Total: 1})
		case r.Method == http.MethodGet && r.URL.Path == "/api/goals/g1":
			_ = json.NewEncoder(w).Encode(types.Goal{ID: "g1", Name: "vacation"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/goals":
			_ = json.NewEncoder(w).Encode(types.Goal{ID: "g2"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/goals/g1":
			_ = json.NewEncoder(w).Encode(types.Goal{ID: "g1", CurrentAmount: 250})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/goals/g1":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	ctx := context.Background()

	list, err := ListGoals(ctx, d)
	if err != nil || len(list.Goals) != 1 {
		t.Fatalf("ListGoals: got=%+v err=%v", list, err)
	}
	got, err := GetGoal(ctx, d, "g1")
	if err != nil || got.Name != "vacation" {
		t.Fatalf("GetGoal: got=%+v err=%v", got, err)
	}
	created, err := CreateGoal(ctx, d, types.GoalRequest{Name: "car", TargetAmount: 8000})
	if err != nil || created.ID != "g2" {
		t.Fatalf("CreateGoal: got=%+v err=%v", created, err)
	}
	updated, err := UpdateGoal(ctx, d, "g1", types.GoalRequest{CurrentAmount: 250})
	if err != nil || updated.CurrentAmount != 250 {
		t.Fatalf("UpdateGoal: got=%+v err=%v", updated, err)
	}
	if err := DeleteGoal(ctx, d, "g1"); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
}
