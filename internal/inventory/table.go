package inventory

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/models"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderTable formats records for the terminal.
func RenderTable(records []models.DeviceRecord) string {
	rows := lo.Map(records, func(rec models.DeviceRecord, _ int) []string {
		return []string{rec.IP, rec.Alias, rec.MAC, rec.Model, rec.Type, rec.Detail}
	})

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("IP", "Alias", "MAC", "Model", "Type", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
