// # cmd/scout/ui.go
package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scout/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	hotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	calmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	lastUpdate time.Time
	fileCount  int
	dirCount   int
	hotFiles   int
}

type scanMsg struct {
	scan *report.Scan
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case scanMsg:
		m.fileCount = msg.scan.Stats.TotalFiles
		m.dirCount = msg.scan.Stats.TotalDirs
		m.lastUpdate = time.Now()
		m.hotFiles = 0

		items := []list.Item{}
		for _, entry := range topByImportance(msg.scan, 50) {
			info := entry.Info
			if info.ComplexityScore > 5 {
				m.hotFiles++
			}
			items = append(items, item{
				title: entry.Record.Path,
				desc: fmt.Sprintf("importance %.1f | complexity %.1f | %d branches | %s",
					info.ImportanceScore,
					info.ComplexityScore,
					info.Branching.TotalBranches,
					info.Purpose),
			})
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last scan: %v | %d files | %d dirs",
		m.lastUpdate.Format("15:04:05"), m.fileCount, m.dirCount))

	var summary string
	if m.hotFiles == 0 {
		summary = calmStyle.Render("No complexity hotspots")
	} else {
		summary = hotStyle.Render(fmt.Sprintf("%d hotspots", m.hotFiles))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Source Tree Profile"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Files by importance"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}
