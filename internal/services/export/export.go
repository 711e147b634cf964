package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	// StandingsSheet holds one row per ranked player
	StandingsSheet = "Standings"

	// GroupsSheet holds one row per group
	GroupsSheet = "Groups"
)

// WriteStandingsInput contains the standings to export
type WriteStandingsInput struct {
	Rankings []*models.RankedScore
	Groups   []*models.GroupStats
	Course   *course.Course
}

// WriteStandingsXLSX renders the standings as an XLSX workbook.
// The standings sheet starts with a header row and a par row, followed by
// the players in ranking order with one column per hole.
func WriteStandingsXLSX(w io.Writer, input *WriteStandingsInput) error {
	if input == nil || input.Course == nil {
		return errors.New("input and course cannot be nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), StandingsSheet); err != nil {
		return fmt.Errorf("failed to name standings sheet: %w", err)
	}

	if err := writeStandings(f, input); err != nil {
		return err
	}

	if _, err := f.NewSheet(GroupsSheet); err != nil {
		return fmt.Errorf("failed to create groups sheet: %w", err)
	}

	if err := writeGroups(f, input.Groups); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func writeStandings(f *excelize.File, input *WriteStandingsInput) error {
	holes := input.Course.Holes()

	header := []interface{}{"Rank", "Player", "Group"}
	parRow := []interface{}{"", "Par", ""}
	for hole := 1; hole <= holes; hole++ {
		header = append(header, strconv.Itoa(hole))
		par, _ := input.Course.Par(hole)
		parRow = append(parRow, par)
	}
	header = append(header, "Gross", "Par", "Net")
	parRow = append(parRow, "", input.Course.TotalPar(), "")

	rows := [][]interface{}{header, parRow}
	for _, ranked := range input.Rankings {
		row := []interface{}{ranked.Rank, ranked.PlayerName, ranked.GroupName}
		for hole := 1; hole <= holes; hole++ {
			if hs, ok := ranked.Hole(hole); ok {
				row = append(row, hs.Strokes)
			} else {
				row = append(row, "")
			}
		}
		row = append(row, ranked.TotalScore, ranked.TotalPar, ranked.NetScore)
		rows = append(rows, row)
	}

	return writeRows(f, StandingsSheet, rows)
}

func writeGroups(f *excelize.File, groups []*models.GroupStats) error {
	rows := [][]interface{}{
		{"Group", "Players", "Total", "Total Net", "Average", "Average Net"},
	}
	for _, g := range groups {
		rows = append(rows, []interface{}{
			g.GroupName, g.PlayerCount, g.TotalScore, g.TotalNet, g.AverageScore, g.AverageNet,
		})
	}

	return writeRows(f, GroupsSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for idx, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", idx+1, err)
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, idx+1, err)
		}
	}
	return nil
}
