package csv_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pageaudit"
	pacsv "github.com/fwojciec/pageaudit/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "url,title,metaDescription,h1,h2,h3,h4,h5,h6,textLengthWords,allWords,totalWords\n"

func TestWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("creates file with header and one row", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scraped_data.csv")
		w := pacsv.NewWriter(path)

		err := w.WriteRecord(context.Background(), &pageaudit.Record{
			URL:   "https://www.avathi.com/activities/rafting/",
			Title: "Rafting",
			H1:    "Rafting",
			Words: []string{"Rafting", "trip"},
		})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, header+"https://www.avathi.com/activities/rafting/,Rafting,,Rafting,,,,,,2,Rafting trip,2\n", string(content))
	})

	t.Run("appends rows without repeating header", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		// Two separate writers model two runs against the same file.
		require.NoError(t, pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{URL: "https://example.com/a"}))
		require.NoError(t, pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{URL: "https://example.com/b"}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(content), "url,title"))

		rows := readCSV(t, path)
		require.Len(t, rows, 3)
		assert.Equal(t, "https://example.com/a", rows[1][0])
		assert.Equal(t, "https://example.com/b", rows[2][0])
	})

	t.Run("separates rows when existing file lacks trailing newline", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		existing := strings.TrimSuffix(header, "\n") + "\n" + `"https://example.com/old","","","","","","","","",0,"",0`
		require.NoError(t, os.WriteFile(path, []byte(existing), 0644))

		err := pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{URL: "https://example.com/new"})
		require.NoError(t, err)

		rows := readCSV(t, path)
		require.Len(t, rows, 3)
		assert.Equal(t, "https://example.com/old", rows[1][0])
		assert.Equal(t, "https://example.com/new", rows[2][0])
	})

	t.Run("writes header into empty existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		require.NoError(t, pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{URL: "https://example.com/a"}))

		rows := readCSV(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, pageaudit.Columns(), rows[0])
	})

	t.Run("does not create file for invalid record", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		err := pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{})

		require.Error(t, err)
		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("returns error when directory is missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.csv")

		err := pacsv.NewWriter(path).WriteRecord(context.Background(), &pageaudit.Record{URL: "https://example.com/a"})

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := pacsv.NewWriter(path).WriteRecord(ctx, &pageaudit.Record{URL: "https://example.com/a"})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	want := &pageaudit.Record{
		URL:             "https://www.avathi.com/places/coorg/",
		Title:           `Coorg, "Scotland of India"`,
		MetaDescription: "Line one\nline two, with comma",
		H1:              "Coorg",
		H2:              `Say "hi"`,
		H3:              "a,b,c",
		H6:              "  padded  ",
		Words:           []string{"Coffee,", `"estates"`, "and", "hills"},
	}

	require.NoError(t, pacsv.NewWriter(path).WriteRecord(context.Background(), want))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, pageaudit.Columns(), rows[0])
	assert.Equal(t, want.Values(), rows[1])
	assert.Equal(t, rows[1][9], rows[1][11])
	assert.Len(t, strings.Fields(rows[1][10]), 4)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

// Compile-time verification that Writer implements pageaudit.RecordWriter
var _ pageaudit.RecordWriter = (*pacsv.Writer)(nil)
