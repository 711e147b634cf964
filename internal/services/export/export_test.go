package export

import (
	"bytes"
	"testing"

	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriteStandingsXLSX(t *testing.T) {
	rankings := []*models.RankedScore{
		{
			PlayerScore: models.PlayerScore{
				PlayerID:   "p2",
				PlayerName: "Bob",
				GroupName:  "A",
				HoleScores: []models.HoleScore{
					{HoleNumber: 1, Strokes: 4, Par: 4},
					{HoleNumber: 3, Strokes: 2, Par: 3},
				},
				TotalScore: 6,
				TotalPar:   7,
				NetScore:   -1,
			},
			Rank: 1,
		},
		{
			PlayerScore: models.PlayerScore{
				PlayerID:   "p1",
				PlayerName: "Ann",
				GroupName:  "B",
				HoleScores: []models.HoleScore{{HoleNumber: 1, Strokes: 5, Par: 4}},
				TotalScore: 5,
				TotalPar:   4,
				NetScore:   1,
			},
			Rank: 2,
		},
	}
	groups := []*models.GroupStats{
		{GroupName: "A", PlayerCount: 1, TotalScore: 6, TotalNet: -1, AverageScore: 6, AverageNet: -1},
		{GroupName: "B", PlayerCount: 1, TotalScore: 5, TotalNet: 1, AverageScore: 5, AverageNet: 1},
	}

	var buf bytes.Buffer
	err := WriteStandingsXLSX(&buf, &WriteStandingsInput{
		Rankings: rankings,
		Groups:   groups,
		Course:   course.Default(),
	})
	require.NoError(t, err)

	standings := readSheet(t, buf.Bytes(), StandingsSheet)
	require.Len(t, standings, 4)

	header := standings[0]
	require.Len(t, header, 3+course.Holes+3)
	assert.Equal(t, []string{"Rank", "Player", "Group", "1"}, header[:4])
	assert.Equal(t, []string{"Gross", "Par", "Net"}, header[len(header)-3:])

	par := standings[1]
	assert.Equal(t, "Par", par[1])
	assert.Equal(t, []string{"4", "4", "3"}, par[3:6])
	require.Greater(t, len(par), 3+course.Holes+1)
	assert.Equal(t, "70", par[3+course.Holes+1])

	bob := standings[2]
	assert.Equal(t, []string{"1", "Bob", "A", "4", "", "2"}, bob[:6])
	assert.Equal(t, []string{"6", "7", "-1"}, bob[len(bob)-3:])

	ann := standings[3]
	assert.Equal(t, []string{"2", "Ann", "B", "5"}, ann[:4])
	assert.Equal(t, []string{"5", "4", "1"}, ann[len(ann)-3:])

	groupRows := readSheet(t, buf.Bytes(), GroupsSheet)
	require.Len(t, groupRows, 3)
	assert.Equal(t, []string{"Group", "Players", "Total", "Total Net", "Average", "Average Net"}, groupRows[0])
	assert.Equal(t, []string{"A", "1", "6", "-1", "6", "-1"}, groupRows[1])
}

func TestWriteStandingsXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStandingsXLSX(&buf, &WriteStandingsInput{Course: course.Default()}))

	assert.Len(t, readSheet(t, buf.Bytes(), StandingsSheet), 2)
	assert.Len(t, readSheet(t, buf.Bytes(), GroupsSheet), 1)
}

func TestWriteStandingsXLSXRequiresCourse(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteStandingsXLSX(&buf, nil))
	assert.Error(t, WriteStandingsXLSX(&buf, &WriteStandingsInput{}))
}
