package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	incoming := uuid.New().String()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"sem header", "", false},
		{"uuid válido", incoming, true},
		{"valor inválido", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.incoming)

			assert.Equal(t, id, GetCorrelationID(ctx))
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			if tt.reused {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}
		})
	}
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.True(t, Setup("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.False(t, Setup("verbose"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFields_DevelopmentKeepsRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l := &logger{entry: logrus.NewEntry(logrus.New())}
	filtered := l.WithFields(Fields{"format": "csv", "remote_addr": "127.0.0.1", "record_count": 3}).(*logger)

	assert.Equal(t, "csv", filtered.entry.Data["format"])
	assert.Equal(t, 3, filtered.entry.Data["record_count"])
	assert.NotContains(t, filtered.entry.Data, "remote_addr")
}

func TestWithFields_ProductionKeepsAll(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	l := &logger{entry: logrus.NewEntry(logrus.New())}
	all := l.WithFields(Fields{"remote_addr": "127.0.0.1"}).(*logger)

	assert.Equal(t, "127.0.0.1", all.entry.Data["remote_addr"])
}
