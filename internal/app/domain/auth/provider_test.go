package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestStatic_SignedOut(t *testing.T) {
	p := NewStatic(models.SignedOut())

	assert.Nil(t, p.CurrentUser())
	doc := renderDoc(t, p.SignedOutView(p.TriggerSignIn()))
	assert.Equal(t, 1, doc.Find("[data-testid='signed-out']").Length())
	assert.Equal(t, 1, doc.Find("[data-testid='sign-in-button']").Length())

	action, _ := doc.Find("form").Attr("action")
	assert.Equal(t, "/auth/signin", action)

	doc = renderDoc(t, p.SignedInView(UserButton(nil)))
	assert.Equal(t, 0, doc.Find("[data-testid='signed-in']").Length())
	assert.Equal(t, 0, doc.Find("[data-testid='user-button']").Length())
}

func TestStatic_SignedIn(t *testing.T) {
	user := &models.User{ID: "u-1", DisplayName: "test user"}
	p := NewStatic(models.SignedIn(user))

	assert.Same(t, user, p.CurrentUser())
	doc := renderDoc(t, p.SignedInView(UserButton(p.CurrentUser())))
	button := doc.Find("[data-testid='signed-in'] [data-testid='user-button']")
	require.Equal(t, 1, button.Length())
	title, _ := button.Attr("title")
	assert.Equal(t, "Test User", title)
	assert.Equal(t, "TU", button.Find("span").Text())

	doc = renderDoc(t, p.SignedOutView(p.TriggerSignIn()))
	assert.Equal(t, 0, doc.Find("[data-testid='sign-in-button']").Length())
}

func TestStatic_SignedInWithoutUserIsSignedOut(t *testing.T) {
	p := &Static{Auth: models.AuthState{SignedIn: true}}

	assert.False(t, p.State().SignedIn)
	doc := renderDoc(t, p.SignedOutView(p.TriggerSignIn()))
	assert.Equal(t, 1, doc.Find("[data-testid='sign-in-button']").Length())
}

func TestStatic_CustomSignInPath(t *testing.T) {
	p := &Static{SignInPath: "/login"}

	doc := renderDoc(t, p.TriggerSignIn())
	action, _ := doc.Find("form").Attr("action")
	assert.Equal(t, "/login", action)
}

func TestDisplayNameAndInitials(t *testing.T) {
	assert.Equal(t, "Account", DisplayName(nil))
	assert.Equal(t, "Account", DisplayName(&models.User{DisplayName: "   "}))
	assert.Equal(t, "Ada Lovelace", DisplayName(&models.User{DisplayName: "ada   lovelace"}))

	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "AB", Initials("Ada Byron Lovelace"))
	assert.Equal(t, "É", Initials("élodie"))
	assert.Equal(t, "", Initials(""))
}

func TestUserButton_EscapesName(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, UserButton(&models.User{DisplayName: "<script>"}).Render(context.Background(), &sb))
	assert.NotContains(t, sb.String(), "<script>")
}
