package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/healthbuddy-dev/healthbuddy/internal/core"
	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
	"github.com/spf13/cobra"
)

var (
	triageTitleStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	triagePromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	triagePanelStyle  = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	triageHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type triageModel struct {
	input    string
	decision *models.Decision
	logErr   error
	width    int
}

func newTriageModel() triageModel {
	return triageModel{}
}

func (m triageModel) Init() tea.Cmd {
	return nil
}

func (m triageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input)
			if text == "" {
				return m, nil
			}
			d := Engine.Evaluate(text, core.EvaluateOptions{})
			m.decision = &d
			m.logErr = nil
			if DecisionLog != nil {
				record := models.DecisionRecord{
					ID:       uuid.NewString(),
					Time:     time.Now().UTC(),
					Input:    text,
					Decision: d,
				}
				m.logErr = DecisionLog.Append(record)
			}
			m.input = ""
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.input += string(msg.Runes)
				if msg.Type == tea.KeySpace {
					m.input += " "
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m triageModel) View() string {
	var b strings.Builder

	b.WriteString(triageTitleStyle.Render("HealthBuddy Triage"))
	b.WriteString("\n\n")
	b.WriteString(triagePromptStyle.Render("Describe your symptoms: "))
	b.WriteString(m.input)
	b.WriteString("█\n")

	if m.decision != nil {
		b.WriteString("\n")
		b.WriteString(triagePanelStyle.Render(renderDecisionPanel(*m.decision)))
		b.WriteString("\n")
		if m.logErr != nil {
			b.WriteString(triageHelpStyle.Render(fmt.Sprintf("warning: recording decision: %v", m.logErr)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(triageHelpStyle.Render("enter: triage • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderDecisionPanel renders a decision for the TUI result panel.
func renderDecisionPanel(d models.Decision) string {
	var b strings.Builder

	badge := tierBadgeStyles[d.Tier].Render(d.Tier.Display())
	b.WriteString(badge + "  " + checkHeadlineStyle.Render(d.Headline) + "\n")

	var ctx []string
	if d.Age != nil {
		ctx = append(ctx, fmt.Sprintf("age %d", *d.Age))
	}
	if d.DurationDays != nil {
		ctx = append(ctx, fmt.Sprintf("%d day(s)", *d.DurationDays))
	}
	if len(ctx) > 0 {
		b.WriteString(checkDimStyle.Render(strings.Join(ctx, ", ")) + "\n")
	}

	for _, point := range d.AdvicePoints {
		b.WriteString("• " + point + "\n")
	}

	for _, label := range d.RouteLabels {
		link := "#"
		if LinkResolver != nil {
			link = LinkResolver.Resolve(label)
		}
		b.WriteString(checkRouteStyle.Render("→ "+label+": ") + link + "\n")
	}

	b.WriteString(checkDimStyle.Render("reason: " + d.ReasonCode))
	return b.String()
}

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Interactive symptom triage session",
	Long: `Start an interactive triage session in the terminal.

Type a symptom description and press enter to classify it. Each
decision is recorded in the decision log. Press esc to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("triage engine not initialized")
		}

		p := tea.NewProgram(newTriageModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running triage session: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(triageCmd)
}
