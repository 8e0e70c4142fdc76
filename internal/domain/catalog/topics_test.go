//go:build unit

package catalog_test

import (
	"testing"

	"meet-scheduler/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTopicLabels(t *testing.T) {
	t.Run("maps known keys and passes unknown keys through", func(t *testing.T) {
		got := catalog.TopicLabels([]string{"collaboration", "technical", "llamas"})
		assert.Equal(t, []string{"Collaboration Opportunity", "Technical Discussion", "llamas"}, got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, catalog.TopicLabels(nil))
		assert.Empty(t, catalog.TopicLabels([]string{}))
	})
}
