package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/csvio"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/testutil"
)

func newTransferFixture(t *testing.T) (*serviceFixture, TransferService) {
	t.Helper()
	f := newServiceFixture(t)
	uow := testutil.NewTestUoW(f.db)
	return f, NewTransferService(uow, f.assessments, f.answers, f.bank, NoopObserver{})
}

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	f, transfers := newTransferFixture(t)
	ctx := context.Background()

	src := f.seed(t, testutil.WithGateOpen())
	keys := f.bank.Keys()
	for _, key := range keys {
		_, err := f.responses.SetChecklist(ctx, src.ID, key, domain.RehydrateChecklist(3))
		require.NoError(t, err)
	}
	_, err := f.responses.Override(ctx, src.ID, keys[0], 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, transfers.Export(ctx, src.ID, &buf))

	dst := f.seed(t)
	summary, err := transfers.Import(ctx, dst.ID, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, csvio.SchemaFull, summary.Schema)
	assert.Equal(t, len(keys), summary.Applied)
	assert.Zero(t, summary.Skipped)

	// Globals restored the gate state, so evaluation works on the copy.
	ev, err := f.evaluations.Evaluate(ctx, dst.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(5), ev.ConceptLevels[keys[0]])

	fetched, err := f.assessments.GetByID(ctx, dst.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fixture Co", fetched.Company)
	assert.True(t, fetched.Eligibility.GateOpen())
}

func TestTransferService_ImportOverwritesExistingAnswers(t *testing.T) {
	f, transfers := newTransferFixture(t)
	ctx := context.Background()

	a := f.seed(t, testutil.WithGateOpen())
	key := f.bank.Keys()[0]
	_, err := f.responses.Override(ctx, a.ID, key, 5)
	require.NoError(t, err)

	input := "Dimension,Concept,Selected level\n" +
		key.Dimension + "," + key.Concept + ",2\n"

	summary, err := transfers.Import(ctx, a.ID, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, csvio.SchemaLegacy, summary.Schema)
	assert.Equal(t, 1, summary.Applied)

	stored, err := f.answers.Get(ctx, a.ID, key)
	require.NoError(t, err)
	assert.False(t, stored.OverrideEnabled, "import replaces the whole answer row")
	level, ok := stored.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, domain.Level(2), level)
}

func TestTransferService_ImportRejectsForeignCSV(t *testing.T) {
	f, transfers := newTransferFixture(t)
	a := f.seed(t)

	_, err := transfers.Import(context.Background(), a.ID, strings.NewReader("Name,Value\nx,1\n"))
	var missing *csvio.MissingColumnsError
	assert.ErrorAs(t, err, &missing)
}

func TestTransferService_ExportWorksWithClosedGateAndNoAnswers(t *testing.T) {
	f, transfers := newTransferFixture(t)
	a := f.seed(t)

	var buf bytes.Buffer
	require.NoError(t, transfers.Export(context.Background(), a.ID, &buf))
	assert.Equal(t, 1+f.bank.TotalQuestions(), strings.Count(buf.String(), "\n"))
}
