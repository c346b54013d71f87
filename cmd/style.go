package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/range-equity/application"
	"github.com/luca-patrignani/range-equity/domain/equity"
	"github.com/luca-patrignani/range-equity/domain/poker"
)

const barWidth = 50

var cellStyles = map[equity.State]*pterm.Style{
	equity.Excluded:         pterm.NewStyle(pterm.BgBlack, pterm.FgDarkGray),
	equity.FullyBlocked:     pterm.NewStyle(pterm.BgDarkGray, pterm.FgBlack),
	equity.Danger:           pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
	equity.Safe:             pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	equity.Split:            pterm.NewStyle(pterm.BgBlue, pterm.FgWhite),
	equity.NeutralEvaluated: pterm.NewStyle(pterm.BgBlack, pterm.FgWhite),
	equity.PreflopPair:      pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	equity.PreflopSuited:    pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	equity.PreflopOffsuit:   pterm.NewStyle(pterm.BgWhite, pterm.FgBlack),
}

func styleCell(cr equity.CellResult) string {
	name := fmt.Sprintf(" %-3s ", cr.Cell.Name())
	if st, ok := cellStyles[cr.State]; ok {
		return st.Sprint(name)
	}
	return name
}

func printSlots(s equity.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var b strings.Builder
	b.WriteString(pterm.Sprintfln("Hero:    %s", printCards(s.Hero, 2)))
	b.WriteString(pterm.Sprintfln("Board:   %s  (%s)", printCards(s.Board, poker.BoardSize), poker.RoundOf(len(s.Board))))
	if len(s.Villain) > 0 {
		b.WriteString(pterm.Sprintfln("Villain: %s", printCards(s.Villain, 2)))
	}
	for i, f := range s.Friends {
		b.WriteString(pterm.Sprintfln("Friend %d: %s", i+1, printCards(f, 2)))
	}
	if s.Ready() {
		hand := append(append([]poker.Card{}, s.Hero...), s.Board...)
		if d, err := poker.Describe(hand); err == nil {
			b.WriteString(pterm.Sprintfln("Made hand: %s", pterm.LightCyan(d)))
		}
	}
	return pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(b.String())
}

func printCards(cards []poker.Card, slots int) string {
	out := make([]string, slots)
	for i := range out {
		if i < len(cards) {
			out[i] = cards[i].Styled()
		} else {
			out[i] = pterm.FgDarkGray.Sprint("?")
		}
	}
	return strings.Join(out, " ")
}

// printTotals renders the outcome summary. It never shows a percentage while
// the hero hand cannot be scored.
func printTotals(res equity.Result) string {
	if !res.HeroScored {
		return pterm.Warning.Sprintln("MISSING CARDS: the hero needs two cards and the board at least three")
	}
	t := res.Totals
	if t.Possible == 0 {
		return pterm.Warning.Sprintln("no opponent hand is possible with the cards on the table")
	}

	if res.Mode == equity.HeadsUpMode {
		header := pterm.LightCyan("HEADS-UP (hero vs villain)") + "\n"
		switch {
		case t.Winning > 0:
			return header + pterm.Success.Sprintln("YOU WIN")
		case t.Losing > 0:
			return header + pterm.Error.Sprintln("YOU LOSE")
		default:
			return header + pterm.Info.Sprintln("SPLIT POT")
		}
	}

	eq := res.Equity()
	var b strings.Builder
	b.WriteString(pterm.LightCyan("AGAINST ANY HAND") + "\n")
	b.WriteString(pterm.LightGreen(fmt.Sprintf("You win %.1f%% of the possible hands", eq.Win)) + "\n")
	b.WriteString(equityBar(eq) + "\n")
	b.WriteString(fmt.Sprintf("Hands that beat you: %d | Hands you beat: %d | Ties: %d | Possible: %d\n",
		t.Losing, t.Winning, t.Ties, t.Possible))
	if t.Failed > 0 {
		b.WriteString(pterm.Warning.Sprintfln("%d hands could not be evaluated", t.Failed))
	}
	return b.String()
}

// equityBar paints the winning and tying share green and the losing share red.
func equityBar(eq equity.Equity) string {
	safe := int((eq.Win+eq.Tie)/100*barWidth + 0.5)
	if safe > barWidth {
		safe = barWidth
	}
	return pterm.BgGreen.Sprint(strings.Repeat(" ", safe)) + pterm.BgRed.Sprint(strings.Repeat(" ", barWidth-safe))
}

func printMatrix(res equity.Result) (string, error) {
	header := []string{""}
	for _, r := range poker.RanksDescending {
		header = append(header, poker.RankString(r))
	}
	data := [][]string{header}
	for i, row := range res.Matrix {
		line := []string{poker.RankString(poker.RanksDescending[i])}
		for _, cr := range row {
			line = append(line, styleCell(cr))
		}
		data = append(data, line)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

var legend = []struct {
	state equity.State
	label string
	text  string
}{
	{equity.Danger, "RED", "Danger: at least one combo of this cell beats you"},
	{equity.Safe, "GREEN", "Safe: you beat every possible combo of this cell"},
	{equity.Split, "BLUE", "Split: the only outcomes left are ties"},
	{equity.FullyBlocked, "DARK GRAY", "Blocked: the cards are in your hand, a friend's or on the board"},
	{equity.Excluded, "BLACK", "Excluded: removed from the villain range by hand"},
	{equity.PreflopPair, "YELLOW/CYAN", "Preflop: pairs and suited hands, real colours appear with the flop"},
}

func printLegend() (string, error) {
	data := [][]string{{"Colour", "Meaning"}}
	for _, l := range legend {
		data = append(data, []string{cellStyles[l.state].Sprint(" " + l.label + " "), l.text})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// printState renders the whole dashboard for the table.
func printState(table *application.Table) error {
	snapshot := table.Snapshot()
	res, _ := table.Evaluate()

	pterm.Println(printSlots(snapshot))
	pterm.DefaultSection.Println("YOUR CHANCES")
	pterm.Print(printTotals(res))

	pterm.DefaultSection.Println("OPPONENT HANDS")
	matrix, err := printMatrix(res)
	if err != nil {
		return err
	}
	pterm.Println(matrix)
	legendTable, err := printLegend()
	if err != nil {
		return err
	}
	pterm.Println(legendTable)
	return nil
}
