package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "ROSTER_PATH", "STATIC_DIR", "KAFKA_BROKERS", "ENROLLMENT_TOPIC", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "config/activities.yaml", cfg.RosterPath)
	require.Equal(t, "static", cfg.StaticDir)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, "enrollment_events", cfg.EnrollmentTopic)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()
	require.Equal(t, ":9999", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
activities:
  - name: Chess Club
    description: Learn strategies and tactics
    schedule: Fridays, 3:30 PM - 5:00 PM
    max_participants: 12
    participants:
      - michael@mergington.edu
      - daniel@mergington.edu
  - name: Gym Class
    schedule: Mon/Wed/Fri, 2:00 PM
    max_participants: 30
`), 0o644))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, "Chess Club", roster[0].Name)
	require.Equal(t, 12, roster[0].MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, roster[0].Participants)
	require.Equal(t, "Gym Class", roster[1].Name)
	require.Empty(t, roster[1].Participants)
}

func TestLoadRosterRejectsEmptyAndMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRoster(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("activities: []\n"), 0o644))
	_, err = LoadRoster(empty)
	require.Error(t, err)

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("activities: {not: [valid"), 0o644))
	_, err = LoadRoster(malformed)
	require.Error(t, err)
}
