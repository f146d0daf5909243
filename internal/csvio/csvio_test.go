package csvio

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/testutil"
)

func TestExportImport_RoundTrip(t *testing.T) {
	b := testutil.NewTestBank()
	a := testutil.NewTestAssessment("ACME Logistics", testutil.WithGateOpen())

	rs := testutil.FullResponseSet(b, 3)
	keys := b.Keys()
	rs.Get(keys[0]).EnableOverride(5)
	rs.Get(keys[1]).Checklist = domain.Checklist{A: true, RealTime: true}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, b, a, rs))

	res, err := Import(&buf, b)
	require.NoError(t, err)

	assert.Equal(t, SchemaFull, res.Schema)
	assert.Equal(t, b.TotalQuestions(), res.Matched)
	assert.Zero(t, res.Skipped)

	assert.Equal(t, "ACME Logistics", res.Globals.Company)
	require.NotNil(t, res.Globals.Employees)
	assert.Equal(t, 40, *res.Globals.Employees)
	require.NotNil(t, res.Globals.IsSME)
	assert.True(t, *res.Globals.IsSME)

	for _, key := range keys {
		want := rs.Get(key)
		got := res.Answers[key]
		require.NotNil(t, got, key.String())
		assert.Equal(t, want.Checklist, got.Checklist, key.String())
		assert.Equal(t, want.OverrideEnabled, got.OverrideEnabled, key.String())
	}
	assert.Equal(t, domain.Level(5), res.Answers[keys[0]].OverrideLevel)
}

func TestExport_AlwaysEmitsEveryRow(t *testing.T) {
	b := testutil.NewTestBank()
	a := testutil.NewTestAssessment("Partial Co")

	// Only one answered question.
	rs := make(domain.ResponseSet)
	rs.Set(testutil.NewTestAnswer(b.Keys()[0], 2))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, b, a, rs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1+b.TotalQuestions())

	header := records[0]
	finalCol := indexOf(t, header, ColFinalLevel)
	dimCol := indexOf(t, header, ColDimensionLevel)

	assert.Equal(t, "2", records[1][finalCol])
	assert.Equal(t, "", records[2][finalCol], "unanswered rows keep the level blank")
	assert.Equal(t, "", records[1][dimCol], "dimension level blank until all five resolve")
}

func TestExport_DimensionLevelWhenComplete(t *testing.T) {
	b := testutil.NewTestBank()
	a := testutil.NewTestAssessment("Done Co")
	rs := testutil.FullResponseSet(b, 4)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, b, a, rs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	dimCol := indexOf(t, records[0], ColDimensionLevel)
	assert.Equal(t, "4", records[1][dimCol])
}

func TestImport_LegacySchemaRehydratesCheckboxes(t *testing.T) {
	b := testutil.NewTestBank()
	keys := b.Keys()

	input := "Dimension,Concept,Selected level\n" +
		keys[0].Dimension + "," + keys[0].Concept + ",1\n" +
		keys[1].Dimension + "," + keys[1].Concept + ",4\n" +
		keys[2].Dimension + "," + keys[2].Concept + ",5\n"

	res, err := Import(strings.NewReader(input), b)
	require.NoError(t, err)

	assert.Equal(t, SchemaLegacy, res.Schema)
	assert.Equal(t, 3, res.Matched)

	assert.Equal(t, domain.Checklist{None: true}, res.Answers[keys[0]].Checklist)
	assert.Equal(t, domain.Checklist{A: true, B: true, C: true}, res.Answers[keys[1]].Checklist)
	assert.Equal(t, domain.Checklist{A: true, B: true, C: true, RealTime: true}, res.Answers[keys[2]].Checklist)

	for _, key := range keys[:3] {
		level, ok := res.Answers[key].FinalLevel()
		require.True(t, ok)
		assert.True(t, level.Valid())
	}
}

func TestImport_MissingRequiredColumns(t *testing.T) {
	b := testutil.NewTestBank()

	_, err := Import(strings.NewReader("Company,Question\nx,y\n"), b)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{ColDimension, ColConcept}, missing.Missing)
}

func TestImport_SkipsUnknownPairs(t *testing.T) {
	b := testutil.NewTestBank()
	keys := b.Keys()

	input := "Dimension,Concept,Selected level\n" +
		"9. Unknown,Nothing,3\n" +
		keys[0].Dimension + ",Wrong concept,3\n" +
		keys[0].Dimension + "," + keys[0].Concept + ",3\n"

	res, err := Import(strings.NewReader(input), b)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 2, res.Skipped)
}

func TestImport_TolerantBooleans(t *testing.T) {
	b := testutil.NewTestBank()
	key := b.Keys()[0]

	header := strings.Join([]string{
		ColDimension, ColConcept,
		ColCheckA, ColCheckB, ColCheckC, ColRealTime, ColNone,
		ColOverrideEnabled, ColOverrideLevel,
	}, ",")
	row := strings.Join([]string{
		key.Dimension, key.Concept,
		"YES", "on", "1", "nonsense", "",
		"y", "4.0",
	}, ",")

	res, err := Import(strings.NewReader(header+"\n"+row+"\n"), b)
	require.NoError(t, err)

	answer := res.Answers[key]
	require.NotNil(t, answer)
	assert.Equal(t, domain.Checklist{A: true, B: true, C: true}, answer.Checklist)
	assert.True(t, answer.OverrideEnabled)
	assert.Equal(t, domain.Level(4), answer.OverrideLevel)
}

func TestImport_OverrideWithoutUsableLevelIsDisabled(t *testing.T) {
	b := testutil.NewTestBank()
	key := b.Keys()[0]

	header := strings.Join([]string{
		ColDimension, ColConcept, ColCheckA, ColCheckB, ColCheckC, ColRealTime, ColNone,
		ColOverrideEnabled, ColOverrideLevel,
	}, ",")
	row := strings.Join([]string{
		key.Dimension, key.Concept, "true", "", "", "", "",
		"true", "12",
	}, ",")

	res, err := Import(strings.NewReader(header+"\n"+row+"\n"), b)
	require.NoError(t, err)

	answer := res.Answers[key]
	require.NotNil(t, answer)
	assert.False(t, answer.OverrideEnabled)

	level, ok := answer.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, domain.Level(2), level, "falls back to the checklist derivation")
}

func TestImport_GlobalsComeFromFirstRowOnly(t *testing.T) {
	b := testutil.NewTestBank()
	keys := b.Keys()

	input := "Company,Employees,Dimension,Concept,Selected level\n" +
		"First Co,10," + keys[0].Dimension + "," + keys[0].Concept + ",2\n" +
		"Second Co,99," + keys[1].Dimension + "," + keys[1].Concept + ",3\n"

	res, err := Import(strings.NewReader(input), b)
	require.NoError(t, err)
	assert.Equal(t, "First Co", res.Globals.Company)
	require.NotNil(t, res.Globals.Employees)
	assert.Equal(t, 10, *res.Globals.Employees)
}

func indexOf(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not found in header", name)
	return -1
}
