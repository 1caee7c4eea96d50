package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/traitkit/internal/command/generics"
	"github.com/bornholm/traitkit/internal/command/largest"
	"github.com/bornholm/traitkit/internal/command/longest"
	"github.com/bornholm/traitkit/internal/command/traits"
	"github.com/bornholm/traitkit/internal/config"
	"github.com/bornholm/traitkit/pkg/bound"
	"github.com/bornholm/traitkit/pkg/lifetime"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout, stderr, err := runAppWithLogs(args...)

	if stderr != "" {
		t.Logf("[STDERR]\n%s", stderr)
	}

	return stdout, err
}

func runAppWithLogs(args ...string) (string, string, error) {
	conf := &config.Config{
		Logger: config.Logger{Level: "error"},
		Output: config.Output{Format: "text"},
	}

	app := NewApp(conf, "traitkit", "test",
		generics.Command(),
		traits.Command(),
		largest.Command(),
		longest.Command(),
	)

	var stdout, stderr bytes.Buffer

	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"traitkit"}, args...))

	return stdout.String(), stderr.String(), err
}

func TestCommandLogsContextAttributes(t *testing.T) {
	_, logs, err := runAppWithLogs("--log-level", "debug", "largest", "--kind", "char", "y", "m")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, expected := range []string{"searching largest value", "command=largest", "kind=char", "count=2"} {
		if !strings.Contains(logs, expected) {
			t.Errorf("expected logs to contain '%s', got '%s'", expected, logs)
		}
	}
}

func TestGenericsCommand(t *testing.T) {
	output, err := runApp(t, "generics")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Distance from origin: 5\np3.x = 5, p3.y = c\n", output; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestGenericsCommandJSON(t *testing.T) {
	output, err := runApp(t, "--format", "json", "generics", "--x", "5", "--y", "12", "--left-x", "7", "--right-y", "kept")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var result generics.Result
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := float32(13), result.Distance; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}

	if e, g := (generics.Mixup{X: 7, Y: "kept"}), result.Mixup; e != g {
		t.Errorf("expected '%v', got '%v'", spew.Sdump(e), spew.Sdump(g))
	}
}

func TestTraitsCommand(t *testing.T) {
	output, err := runApp(t, "traits")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expectedLines := []string{
		"1 new tweet: of course, as you probably already know, people, (Read more from @horse_ebooks...)",
		"New article available! (Read more from Iceburgh...)",
		"Breaking news with trait as parameter! (Read more from Iceburgh...)",
		"Breaking news with trait as parameter using the bound syntax! of course, as you probably already know, people, (Read more from @horse_ebooks...)",
		"Two things want to be summarized!",
		"Display: @horse_ebooks: of course, as you probably already know, people, Summary: of course, as you probably already know, people, (Read more from @horse_ebooks...)",
	}

	for _, line := range expectedLines {
		if !strings.Contains(output, line+"\n") {
			t.Errorf("expected output to contain line '%s', got:\n%s", line, output)
		}
	}
}

func TestTraitsCommandFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traitkit.yml")

	data := []byte("format: yaml\nusername: rustacean\nauthor: Someone\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output, err := runApp(t, "--config", path, "traits")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var result traits.Result
	if err := yaml.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("could not decode output '%s': %+v", output, errors.WithStack(err))
	}

	if e, g := "@rustacean", result.Tweet.Author; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}

	if e, g := "(Read more from Someone...)", result.Article.Summary; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestLargestCommand(t *testing.T) {
	type testCase struct {
		Args     []string
		Expected string
	}

	testCases := []testCase{
		{Args: []string{"largest", "34", "50", "25", "100", "65"}, Expected: "The largest int is 100\n"},
		{Args: []string{"largest", "--kind", "char", "y", "m", "a", "q"}, Expected: "The largest char is y\n"},
		{Args: []string{"largest", "--kind", "float", "1.5", "2.25", "0.5"}, Expected: "The largest float is 2.25\n"},
		{Args: []string{"largest", "--kind", "string", "pear", "apple", "zucchini"}, Expected: "The largest string is zucchini\n"},
	}

	for _, tc := range testCases {
		output, err := runApp(t, tc.Args...)
		if err != nil {
			t.Fatalf("%v: %+v", tc.Args, errors.WithStack(err))
		}

		if e, g := tc.Expected, output; e != g {
			t.Errorf("%v: expected '%v', got '%v'", tc.Args, e, g)
		}
	}
}

func TestLargestCommandErrors(t *testing.T) {
	if _, err := runApp(t, "largest"); !errors.Is(err, bound.ErrEmptyInput) {
		t.Errorf("expected error '%v', got '%v'", bound.ErrEmptyInput, err)
	}

	if _, err := runApp(t, "largest", "--kind", "char", "ab"); err == nil {
		t.Error("expected an error for a multi-character value")
	}

	if _, err := runApp(t, "largest", "--kind", "complex", "1"); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestLongestCommand(t *testing.T) {
	output, err := runApp(t, "longest", "long string is long", "xyz")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "The longest string is long string is long\n", output; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestLongestCommandCollatedYAML(t *testing.T) {
	output, err := runApp(t, "-o", "yaml", "longest", "--mode", "collated", "--lang", "de", "äpfel", "birne")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var result longest.Result
	if err := yaml.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "birne", result.Result; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestLongestCommandOutlive(t *testing.T) {
	if _, err := runApp(t, "longest", "--outlive", "long string is long", "xyz"); !errors.Is(err, lifetime.ErrLifetimeViolation) {
		t.Errorf("expected error '%v', got '%v'", lifetime.ErrLifetimeViolation, err)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := runApp(t, "--format", "xml", "generics"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
