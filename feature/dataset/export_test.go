package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"commerce-linker/core/generator"
	"commerce-linker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	g := generator.New(generator.Config{Seed: 5}, generator.WithClock(func() time.Time { return now }))
	accounts := g.GenerateAccounts(8)
	return &Dataset{ID: "ds-1", Seed: 5, Accounts: accounts, Sessions: g.GenerateSessions(25, accounts)}
}

func readAll(t *testing.T, r io.Reader) [][]string {
	t.Helper()
	rows, err := csv.NewReader(r).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteAccountsCSV(t *testing.T) {
	ds := testDataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteAccountsCSV(&buf, ds.Accounts))

	rows := readAll(t, &buf)
	require.Len(t, rows, 9)
	assert.Equal(t, accountHeader, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(accountHeader))
	}
	assert.Equal(t, ds.Accounts[0].CustomerID, rows[1][0])
	assert.Equal(t, ds.Accounts[0].EmailAddress, rows[1][5])
}

func TestWriteSessionsCSV(t *testing.T) {
	ds := testDataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSessionsCSV(&buf, ds.Sessions))

	rows := readAll(t, &buf)
	require.Len(t, rows, 26)
	assert.Equal(t, sessionHeader, rows[0])
	for i, row := range rows[1:] {
		require.Len(t, row, len(sessionHeader))
		s := ds.Sessions[i]
		assert.Equal(t, s.SessionID, row[7])
		assert.Equal(t, s.SessionDate.Format(time.DateTime), row[8])
		if s.CampaignSource == nil {
			assert.Empty(t, row[21])
		} else {
			assert.Equal(t, *s.CampaignSource, row[21])
		}
	}
}

func TestWriteCSV_EmptyPopulationHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSessionsCSV(&buf, nil))
	assert.Equal(t, strings.Join(sessionHeader, ",")+"\n", buf.String())
}

func TestExportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := ExportDir(dir, testDataset(t))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, AccountsFile), filepath.Join(dir, SessionsFile)}, paths)

	f, err := os.Open(paths[1])
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, readAll(t, f), 26)
}

func TestExporter_ListAndOpen(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "exports/ds-1/" + AccountsFile}
	ch <- minio.ObjectInfo{Key: "exports/ds-1/" + SessionsFile}
	close(ch)
	client.On("ListObjects", mock.Anything, "datasets", minio.ListObjectsOptions{Prefix: "exports/ds-1/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))
	client.On("GetObject", mock.Anything, "datasets", "exports/ds-1/"+AccountsFile, mock.Anything).
		Return(io.NopCloser(strings.NewReader("customer_id\n")), nil)

	e := NewExporter(client, "datasets", "", zap.NewNop())

	keys, err := e.List(context.Background(), "ds-1")
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	rc, err := e.Open(context.Background(), "ds-1", AccountsFile)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "customer_id\n", string(body))

	_, err = e.Open(context.Background(), "ds-1", "../secrets.csv")
	assert.ErrorIs(t, err, ErrUnknownFile)
}
