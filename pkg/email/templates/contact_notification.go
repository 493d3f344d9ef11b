package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TimestampLayout is how the submission time is printed in the footer,
// before the zone label.
const TimestampLayout = "January 2, 2006 at 03:04 PM"

// FormatTimestamp prints t with TimestampLayout followed by the zone
// abbreviation, or a GMT offset such as "GMT+7" when the zone has none.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout) + " " + zoneLabel(t)
}

func zoneLabel(t time.Time) string {
	name, offset := t.Zone()
	if name != "" && name[0] != '+' && name[0] != '-' {
		return name
	}
	if offset == 0 {
		return "GMT"
	}

	sign := "+"
	if offset < 0 {
		sign, offset = "-", -offset
	}
	hours, minutes := offset/3600, offset%3600/60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

const notPhone = "Not provided"

// ContactNotification is the data shown in the team's notification email.
type ContactNotification struct {
	CompanyName string
	YourName    string
	Email       string
	Phone       string
	Subject     string // human-readable subject text, not the code
	Message     string
	SubmittedAt time.Time
}

// ContactNotificationEmail renders the notification. Every value is escaped;
// newlines in Message become <br>.
func ContactNotificationEmail(data ContactNotification) templ.Component {
	return Component(contactNotificationPage(data))
}

func contactNotificationPage(data ContactNotification) g.Node {
	phone := data.Phone
	if strings.TrimSpace(phone) == "" {
		phone = notPhone
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Head(
				Meta(Charset("utf-8")),
				TitleEl(g.Text("New Contact Form Submission")),
				StyleEl(g.Raw(notificationCSS)),
			),
			Body(
				Div(Class("container"),
					Div(Class("header"),
						H1(g.Text("📧 New Contact Form Submission")),
						P(g.Text("VOYAGER Inc. Website")),
					),
					Div(Class("content"),
						H2(Style("color: #222b63; margin-bottom: 20px;"), g.Text("Contact Details")),
						field("🏢 Company:", g.Text(data.CompanyName)),
						field("👤 Contact Person:", g.Text(data.YourName)),
						field("📧 Email:", A(Href("mailto:"+data.Email), Style("color: #3b82f6;"), g.Text(data.Email))),
						field("📱 Phone:", g.Text(phone)),
						field("📋 Subject:", g.Text(data.Subject)),
						H2(Style("color: #222b63; margin: 30px 0 15px 0;"), g.Text("Message")),
						Div(Class("message-box"), multiline(data.Message)),
					),
					Div(Class("footer"),
						P(g.Text("This message was sent from the VOYAGER Inc. website contact form.")),
						P(Class("timestamp"), g.Text("⏰ "+FormatTimestamp(data.SubmittedAt))),
					),
				),
			),
		),
	})
}

func field(label string, value g.Node) g.Node {
	return Div(Class("field"), Strong(g.Text(label)), g.Text(" "), value)
}

func multiline(s string) g.Node {
	lines := strings.Split(s, "\n")
	nodes := make([]g.Node, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(line))
	}
	return g.Group(nodes)
}

const notificationCSS = `
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
.container { max-width: 600px; margin: 0 auto; background: #ffffff; }
.header { background: linear-gradient(135deg, #222b63 0%, #1e40af 100%); color: white; padding: 30px 20px; text-align: center; }
.header h1 { margin: 0; font-size: 24px; font-weight: 600; }
.header p { margin: 5px 0 0 0; opacity: 0.9; }
.content { padding: 30px 20px; }
.field { margin-bottom: 15px; padding: 12px; background: #f8fafc; border-radius: 6px; border-left: 4px solid #222b63; }
.field strong { color: #222b63; display: inline-block; min-width: 120px; }
.message-box { background: #f1f5f9; padding: 20px; border-radius: 8px; border-left: 4px solid #3b82f6; margin: 20px 0; font-style: italic; }
.footer { background: #f8fafc; text-align: center; font-size: 12px; color: #666; padding: 20px; border-top: 1px solid #e2e8f0; }
.timestamp { color: #94a3b8; font-size: 11px; }
`
