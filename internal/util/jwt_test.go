package util

import (
	"clue_quest_backend/internal/model"
	"testing"
	"time"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	team := &model.Team{TeamID: "alpha"}
	team.ID = 7

	token, err := GenerateSessionJWT(team, "sess-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	claims, err := ParseSessionJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if claims.TeamPK != 7 {
		t.Errorf("team pk = %d, want 7", claims.TeamPK)
	}
	if claims.TeamID != "alpha" {
		t.Errorf("team id = %q, want alpha", claims.TeamID)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", claims.SessionID)
	}
}

func TestSessionJWTWrongSecret(t *testing.T) {
	team := &model.Team{TeamID: "alpha"}

	token, err := GenerateSessionJWT(team, "sess-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	if _, err := ParseSessionJWT(token, "other-secret"); err == nil {
		t.Error("token parsed with the wrong secret")
	}
}

func TestSessionJWTExpired(t *testing.T) {
	team := &model.Team{TeamID: "alpha"}

	token, err := GenerateSessionJWT(team, "sess-1", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	if _, err := ParseSessionJWT(token, "test-secret"); err == nil {
		t.Error("expired token parsed as valid")
	}
}
