package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

type homeModel struct {
	ctx context.Context
	svc *game.Service

	width  int
	height int

	state     *game.GameState
	inventory []game.Decoration

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	state     *game.GameState
	inventory []game.Decoration
	err       error
}

type completedMsg struct {
	res *game.CompleteResult
	err error
}

type fedMsg struct {
	res *game.FeedResult
	err error
}

func newHomeModel(ctx context.Context, svc *game.Service) homeModel {
	return homeModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m homeModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m homeModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.svc.Today(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{state: state, inventory: m.svc.Inventory(m.ctx)}
	}
}

func (m homeModel) completeCmd(ref string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteMission(m.ctx, ref)
		return completedMsg{res: res, err: err}
	}
}

func (m homeModel) feedCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.FeedPet(m.ctx)
		return fedMsg{res: res, err: err}
	}
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.state = msg.state
		m.inventory = msg.inventory
		if n := len(m.state.DailyMissions); n > 0 && m.selected >= n {
			m.selected = n - 1
		}
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		if msg.res.Rewarded {
			m.lastLog = fmt.Sprintf("%s %s (+%d %s +%d %s)",
				ui.IconDone, msg.res.Mission.Title,
				game.MissionRewardCoins, ui.IconCoin,
				game.MissionRewardHearts, ui.IconHeart)
			if msg.res.DayCompleted {
				m.lastLog += "  " + ui.Gold.Render("Day complete!")
			}
		} else {
			m.lastLog = "Already completed."
		}
		return m, m.loadCmd()

	case fedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		if msg.res.Fed {
			m.lastLog = fmt.Sprintf("%s %s enjoyed the meal!", ui.IconHeart, msg.res.Pet.Name)
		} else {
			m.lastLog = msg.res.Reason
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.state != nil && m.selected < len(m.state.DailyMissions)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.state == nil || len(m.state.DailyMissions) == 0 {
				return m, nil
			}
			return m, m.completeCmd(m.state.DailyMissions[m.selected].ID)
		case "f":
			return m, m.feedCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m homeModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading…")
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError + " " + m.err.Error())
	}
	if m.state == nil {
		return ui.Muted.Render("No state.")
	}

	var b strings.Builder

	display := game.DisplayPet(m.state.Pet, m.inventory)
	petLines := []string{
		ui.PanelTitle.Render(fmt.Sprintf("%s %s  (lvl %d)", ui.IconPaw, m.state.Pet.Name, m.state.Pet.Level)),
		"",
		"   " + display.Full,
		"",
		ui.Muted.Render(m.state.Pet.StatusText()),
		fmt.Sprintf("Care today: %s", ui.ProgressHearts(m.state.PetVisualState, game.MaxPetVisualState)),
	}
	b.WriteString(ui.Panel.Render(strings.Join(petLines, "\n")))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %d%%\n\n",
		ui.IconCoin, m.state.Coins,
		ui.IconHeart, m.state.Hearts,
		ui.IconMission, m.state.TodayCompletionPercentage()))

	b.WriteString(ui.H2.Render("Today's missions") + "\n")
	for i := range m.state.DailyMissions {
		mission := &m.state.DailyMissions[i]
		mark := "☐"
		if mission.Completed() {
			mark = ui.Good.Render("☑")
		}
		line := fmt.Sprintf("%s %s %s", mark, mission.Title, ui.Muted.Render(fmt.Sprintf("(%d min)", mission.Duration)))
		if i == m.selected {
			line = ui.SelectedRow.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Dim.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · enter complete · f feed · r refresh · q quit"))
	return b.String()
}
