package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/teams"
)

const teamQuestion = "\nWhich team do you want?\n" +
	"(e.g., Lakers, LAL, Duke, Gonzaga)\n" +
	"Type team name or abbreviation (or 'list' to see more examples): "

// prompter reads answers line by line. Once input is exhausted every
// question gets an empty answer.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// ask prints question and returns the trimmed answer.
func (p *prompter) ask(question string) string {
	fmt.Fprint(p.out, question)
	if p.eof {
		return ""
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// mode asks until the answer is "one" or "all". Exhausted input means one.
func (p *prompter) mode() string {
	for {
		answer := strings.ToLower(p.ask("Download data for one team or all teams? (one/all): "))
		if answer == "one" || answer == "all" {
			return answer
		}
		if p.eof {
			return "one"
		}
		p.printf("Please type 'one' or 'all'.\n")
	}
}

// team resolves a team interactively. initial, when set, is tried before
// prompting. Returns false when the user gives up.
func (p *prompter) team(initial string, list []provider.Team) (provider.Team, bool) {
	p.printf("Example team names you can type (name / abbreviation):\n")
	p.bullets(teams.Examples(list, 10))

	for {
		input := initial
		initial = ""
		if input == "" {
			input = p.ask(teamQuestion)
		}
		if input == "" {
			if p.eof {
				return provider.Team{}, false
			}
			p.printf("Please enter a team name or abbreviation.\n")
			continue
		}

		if strings.EqualFold(input, "list") {
			p.printf("\nSome more example teams:\n")
			p.bullets(teams.Examples(list, 30))
			continue
		}

		if t, ok := teams.Find(input, list); ok {
			return t, true
		}

		p.printf("\n❌ Couldn't find that team for this season.\n")
		if suggestions := teams.Suggest(input, list, teams.DefaultSuggestions, teams.DefaultCutoff); len(suggestions) > 0 {
			p.printf("   Did you mean:\n")
			for _, s := range suggestions {
				p.printf("     • %s\n", s)
			}
		} else {
			p.printf("   No close matches found. Try using the exact school name or abbreviation shown above.\n")
		}

		if strings.ToLower(p.ask("Try another team name? (y/n): ")) != "y" {
			return provider.Team{}, false
		}
	}
}

func (p *prompter) bullets(items []string) {
	for _, s := range items {
		p.printf("   • %s\n", s)
	}
}
