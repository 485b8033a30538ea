package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteFiles(context.Background(), sampleReport(), Sections, CSVSink{}, dir)
	require.NoError(t, err)
	require.Len(t, paths, len(Sections))

	assert.Equal(t, filepath.Join(dir, "summary_last_7_days.csv"), paths[0])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	body, err := os.ReadFile(filepath.Join(dir, "daily_sales_last_7_days.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,total_sales,order_count\n2024-03-14,35.00,3\n", string(body))
}

func TestWriteFiles_UnknownSection(t *testing.T) {
	_, err := WriteFiles(context.Background(), sampleReport(), []Section{"inventory"}, JSONSink{}, t.TempDir())
	assert.ErrorIs(t, err, gerr.ErrUnknownSection)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "top_products_last_7_days.json", FileName(sampleReport(), SectionTopProducts, JSONSink{}))
}
