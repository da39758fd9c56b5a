package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unipatch/internal/ui/pretty"
	"github.com/yaklabco/unipatch/pkg/diff"
	"github.com/yaklabco/unipatch/pkg/patch"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("nil diff", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, styles.FormatDiff(nil))
	})

	t.Run("renders all line kinds", func(t *testing.T) {
		t.Parallel()

		d := diff.Generate("f.txt", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"), diff.Options{})
		require.NotNil(t, d)

		out := styles.FormatDiff(d)
		assert.Contains(t, out, "--- a/f.txt\n")
		assert.Contains(t, out, "+++ b/f.txt\n")
		assert.Contains(t, out, "@@ -1,3 +1,3 @@\n")
		assert.Contains(t, out, " a\n")
		assert.Contains(t, out, "-b\n")
		assert.Contains(t, out, "+B\n")
	})

	t.Run("marks missing final newline", func(t *testing.T) {
		t.Parallel()

		d := diff.Generate("f.txt", []byte("a"), []byte("b"), diff.Options{})
		require.NotNil(t, d)

		out := styles.FormatDiff(d)
		assert.Contains(t, out, `\ No newline at end of file`)
	})
}

func TestFormatDiffStat(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	d := diff.Generate("f.txt", []byte("a\nb\n"), []byte("a\nB\nc\n"), diff.Options{})
	require.NotNil(t, d)

	out := styles.FormatDiffStat(d)
	assert.Contains(t, out, "f.txt")
	assert.Contains(t, out, "1 hunk")
	assert.Contains(t, out, "+2")
	assert.Contains(t, out, "-1")
}

func TestFormatApplyResult(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, styles.FormatApplyResult(nil))
	})

	t.Run("written with backup", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatApplyResult(&patch.Result{
			Path:       "f.txt",
			Applied:    true,
			Written:    true,
			BackupPath: "f.txt.bak.1000",
			Stats:      patch.Stats{Hunks: 2, Additions: 3, Deletions: 1},
		})
		assert.Contains(t, out, "patched")
		assert.Contains(t, out, "f.txt")
		assert.Contains(t, out, "2 hunks")
		assert.Contains(t, out, "+3")
		assert.Contains(t, out, "-1")
		assert.Contains(t, out, "backup: f.txt.bak.1000")
	})

	t.Run("dry run", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatApplyResult(&patch.Result{
			Path:    "f.txt",
			Applied: true,
			Stats:   patch.Stats{Hunks: 1, Additions: 1, Deletions: 1},
		})
		assert.Contains(t, out, "would patch")
	})

	t.Run("skipped", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatApplyResult(&patch.Result{
			Skipped:    true,
			SkipReason: "file modified",
		})
		assert.Contains(t, out, "skipped")
		assert.Contains(t, out, "file modified")
	})

	t.Run("no-op", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatApplyResult(&patch.Result{Path: "f.txt"})
		assert.Contains(t, out, "already applied")
	})
}
