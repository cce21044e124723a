package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"helpboard/pkg/board"
	"helpboard/pkg/models"
	"helpboard/pkg/nav"
	"helpboard/pkg/state"
)

const consoleHelp = `commands:
  login <name> [email]         open a session
  logout                       close the session
  nav <view>                   bulletin | messaging | account | my-posts | create-post
  posts                        list the bulletin board
  mine                         list your own posts
  messages                     list inbox previews
  create <title> | <category> | <need,...> | <offer,...>
  edit <id> <title> | <category> | <need,...> | <offer,...>
  delete <id>                  asks for confirmation
  prefs                        show preferences
  set <field> <value>          textSize Small|Medium|Large|Extra Large|2XL,
                               toggles: textToSpeech on|off etc.
  save                         persist preferences
  quit`

// runConsole reads intents line by line. Every command maps onto
// exactly one intent API call.
func runConsole(app *state.App, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "helpboard console; type 'help' for commands")
	for {
		fmt.Fprintf(out, "%s> ", app.View())
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		switch cmd {
		case "help":
			fmt.Fprintln(out, consoleHelp)
		case "quit", "exit":
			return nil
		case "login":
			// multiword names work without quoting: a trailing token
			// containing '@' is taken as the email
			name, email := rest, ""
			if fields := strings.Fields(rest); len(fields) > 1 && strings.Contains(fields[len(fields)-1], "@") {
				email = fields[len(fields)-1]
				name = strings.Join(fields[:len(fields)-1], " ")
			}
			sess, err := app.Login(models.Credential{Name: name, Email: email})
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprintf(out, "welcome, %s (%d unread)\n", sess.Name, app.UnreadBadge())
		case "logout":
			app.Logout()
		case "nav":
			if err := app.Navigate(nav.View(rest)); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case "posts":
			posts, err := app.Posts()
			listPosts(out, posts, err)
		case "mine":
			posts, err := app.OwnPosts()
			listPosts(out, posts, err)
		case "messages":
			msgs, err := app.Messages()
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			for _, m := range msgs {
				mark := " "
				if m.Unread {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %d %-16s %s (%s)\n", mark, m.ID, m.Sender, m.Preview, m.DisplayAge())
			}
		case "create":
			s, err := parseScratch(rest)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			p, err := app.CreatePost(s)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprintln(out, "created", p.ID)
		case "edit":
			id, fields, _ := strings.Cut(rest, " ")
			s, err := parseScratch(fields)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			if _, err := app.BeginEditPost(id); err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			if _, err := app.CommitEditPost(id, s); err != nil {
				// keep the original intact
				_ = app.CancelEditPost(id)
				fmt.Fprintln(out, "error:", err)
			}
		case "delete":
			fmt.Fprint(out, "type 'yes' to confirm: ")
			confirmed := sc.Scan() && strings.TrimSpace(sc.Text()) == "yes"
			ok, err := app.DeletePost(strings.TrimSpace(rest), confirmed)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
			} else if !ok {
				fmt.Fprintln(out, "declined")
			}
		case "prefs":
			p := app.Preferences()
			fmt.Fprintf(out, "textSize=%s textToSpeech=%t emailNotification=%t messageNotification=%t\n",
				p.TextSize, p.TextToSpeech, p.EmailNotification, p.MessageNotification)
		case "set":
			name, val, _ := strings.Cut(rest, " ")
			var err error
			if name == models.FieldTextSize {
				err = app.SetPreference(name, models.TextSize(val))
			} else {
				err = app.SetPreference(name, val == "on" || val == "true")
			}
			if err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case "save":
			if err := app.SavePreferences(); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		default:
			fmt.Fprintf(out, "unknown command %q; type 'help'\n", cmd)
		}
	}
}

func listPosts(out io.Writer, posts []models.Post, err error) {
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	for _, p := range posts {
		owner := p.Author
		if p.OwnedBySelf() {
			owner = "you"
		}
		fmt.Fprintf(out, "%s  %-30s %-16s by %s (%s)\n", p.ID, p.DisplayTitle(), p.Category, owner, p.DisplayAge())
		fmt.Fprintf(out, "    needs: %s | offers: %s\n", strings.Join(p.NeedHelp, ", "), strings.Join(p.CanOffer, ", "))
	}
}

// parseScratch parses "title | category | need,... | offer,..." into a
// scratch buffer. Need/offer lists may be empty.
func parseScratch(in string) (board.Scratch, error) {
	parts := strings.Split(in, "|")
	if len(parts) < 2 {
		return board.Scratch{}, fmt.Errorf("expected 'title | category | need,... | offer,...'")
	}
	s := board.Scratch{
		Title:    strings.TrimSpace(parts[0]),
		Category: models.Category(strings.TrimSpace(parts[1])),
	}
	if len(parts) > 2 {
		s.NeedHelp = splitList(parts[2])
	}
	if len(parts) > 3 {
		s.CanOffer = splitList(parts[3])
	}
	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
