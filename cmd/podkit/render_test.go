package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/podkit/internal/preview"
	"github.com/conn-castle/podkit/internal/prompt"
	"github.com/conn-castle/podkit/internal/render"
	"github.com/conn-castle/podkit/internal/testutil"
)

type stubConfirmer struct {
	answer bool
	err    error
	calls  int
	title  string
}

func (s *stubConfirmer) Confirm(title string, _ string) (bool, error) {
	s.calls++
	s.title = title
	return s.answer, s.err
}

// cliEnv isolates a CLI run: an empty working directory, an in-memory output
// system and a scripted confirmer.
type cliEnv struct {
	dir       string
	sys       *testutil.MemorySystem
	confirmer *stubConfirmer
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	env := &cliEnv{
		dir:       t.TempDir(),
		sys:       testutil.NewMemorySystem(),
		confirmer: &stubConfirmer{},
	}
	require.NoError(t, os.Mkdir(filepath.Join(env.dir, ".git"), 0o755))
	origGetwd, origSystem, origConfirmer := getwd, newSystem, newConfirmer
	getwd = func() (string, error) { return env.dir, nil }
	newSystem = func() render.System { return env.sys }
	newConfirmer = func() prompt.Confirmer { return env.confirmer }
	t.Cleanup(func() {
		getwd, newSystem, newConfirmer = origGetwd, origSystem, origConfirmer
	})
	return env
}

func (env *cliEnv) run(args ...string) (stdout string, stderr string, err error) {
	var out, errOut bytes.Buffer
	err = execute(append([]string{"podkit"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

var podfileArgs = []string{
	"render", "podfile",
	"--sdk-version", "38.0.0",
	"--set", "TARGET_NAME=Exponent",
	"--set", "EXPOKIT_PATH=../",
	"-o", "out/Podfile",
}

func TestRenderPodfileWrites(t *testing.T) {
	env := newCLIEnv(t)
	_, stderr, err := env.run(podfileArgs...)
	require.NoError(t, err)

	data := string(env.sys.Files["out/Podfile"])
	assert.Contains(t, data, "target 'Exponent' do")
	assert.Contains(t, data, "autolink-ios.rb")
	assert.Contains(t, stderr, "wrote out/Podfile")
	assert.Equal(t, 0, env.confirmer.calls)
}

func TestRenderPodfileTrimsVersionFlags(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("render", "podfile",
		"--sdk-version", " 38.0.0 ",
		"--shell-app-sdk-version", " 37.0.0",
		"--set", "TARGET_NAME=Exponent",
		"-o", "Podfile")
	require.NoError(t, err)

	data := string(env.sys.Files["Podfile"])
	assert.Contains(t, data, "pod 'ReactABI37_0_0'")
	assert.NotContains(t, data, "ReactABI38_0_0")
}

func TestRenderPodfileFailureWritesNothing(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("render", "podfile", "--sdk-version", "20.0.0", "-o", "Podfile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "React")
	assert.Empty(t, env.sys.Written())
}

func TestRenderPodfileUnknownKey(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("render", "podfile", "--set", "PODS_ROOT=x", "-o", "Podfile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PODS_ROOT")
	assert.Empty(t, env.sys.Written())
}

func TestRenderPodfileCheckOutOfDate(t *testing.T) {
	env := newCLIEnv(t)
	stdout, stderr, err := env.run(append(podfileArgs, "--check")...)

	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, stdout, "+++ out/Podfile (rendered)")
	assert.Contains(t, stderr, "out of date")
	assert.Empty(t, env.sys.Written())
}

func TestRenderPodfileCheckUpToDate(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(podfileArgs...)
	require.NoError(t, err)

	stdout, stderr, err := env.run(append(podfileArgs, "--check")...)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "up to date")
}

func TestRenderPodfileUnchangedSkipsWrite(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(podfileArgs...)
	require.NoError(t, err)
	env.sys.FailWrite = errors.New("must not write")

	_, stderr, err := env.run(podfileArgs...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "unchanged")
	assert.Equal(t, 0, env.confirmer.calls)
}

func TestRenderPodfileOverwriteDeclined(t *testing.T) {
	env := newCLIEnv(t)
	env.sys.Files["out/Podfile"] = []byte("old\n")

	_, stderr, err := env.run(podfileArgs...)
	require.NoError(t, err)
	assert.Equal(t, 1, env.confirmer.calls)
	assert.Contains(t, env.confirmer.title, "out/Podfile")
	assert.Equal(t, "old\n", string(env.sys.Files["out/Podfile"]))
	assert.Contains(t, stderr, "skipped")
}

func TestRenderPodfileOverwriteAccepted(t *testing.T) {
	env := newCLIEnv(t)
	env.sys.Files["out/Podfile"] = []byte("old\n")
	env.confirmer.answer = true

	stdout, _, err := env.run(append(podfileArgs, "--diff")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "-old")
	assert.Contains(t, string(env.sys.Files["out/Podfile"]), "target 'Exponent' do")
}

func TestRenderPodfileOverwriteYes(t *testing.T) {
	env := newCLIEnv(t)
	env.sys.Files["out/Podfile"] = []byte("old\n")

	_, _, err := env.run(append(podfileArgs, "--yes")...)
	require.NoError(t, err)
	assert.Equal(t, 0, env.confirmer.calls)
	assert.Contains(t, string(env.sys.Files["out/Podfile"]), "target 'Exponent' do")
}

func TestRenderPodfileOverwriteNonInteractive(t *testing.T) {
	env := newCLIEnv(t)
	env.sys.Files["out/Podfile"] = []byte("old\n")
	env.confirmer.err = prompt.ErrNotInteractive

	_, _, err := env.run(podfileArgs...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Equal(t, "old\n", string(env.sys.Files["out/Podfile"]))
}

func TestRenderPodfileReportsUnresolved(t *testing.T) {
	env := newCLIEnv(t)
	_, stderr, err := env.run("render", "podfile", "--sdk-version", "38.0.0", "-o", "Podfile")
	require.NoError(t, err)
	assert.Contains(t, stderr, "EXPOKIT_PATH, TARGET_NAME")
	assert.Contains(t, string(env.sys.Files["Podfile"]), "${TARGET_NAME}")
}

func TestRenderPodfileFromConfig(t *testing.T) {
	env := newCLIEnv(t)
	testutil.WriteFile(t, env.dir, "podkit.toml", `
[render]
output = "ios/Podfile"
sdk_version = "39.0.0"
shell_app_sdk_version = "37.0.0"
values_file = "values.env"

[substitutions]
TARGET_NAME = "FromConfig"
EXPOKIT_PATH = "../"

[[universal_modules]]
pod_name = "EXCamera"
path = "expo-camera/ios"
`)
	testutil.WriteFile(t, env.dir, "values.env", "TARGET_NAME=FromValues\n")

	_, _, err := env.run("render", "podfile")
	require.NoError(t, err)

	data := string(env.sys.Files[filepath.Join(env.dir, "ios", "Podfile")])
	assert.Contains(t, data, "target 'FromValues' do")
	assert.Contains(t, data, "pod 'EXCamera'")
	assert.Contains(t, data, "react_native_pods")
	assert.Contains(t, data, "ReactABI37_0_0")
	assert.NotContains(t, data, "ReactABI38_0_0")
}

func TestRenderPodfileFindsConfigInParent(t *testing.T) {
	env := newCLIEnv(t)
	testutil.WriteFile(t, env.dir, "podkit.toml", `
[render]
output = "ios/Podfile"
sdk_version = "38.0.0"

[substitutions]
TARGET_NAME = "Parent"
EXPOKIT_PATH = "../"
`)
	sub := filepath.Join(env.dir, "ios", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	getwd = func() (string, error) { return sub, nil }

	_, _, err := env.run("render", "podfile")
	require.NoError(t, err)
	assert.Contains(t, string(env.sys.Files[filepath.Join(env.dir, "ios", "Podfile")]), "target 'Parent' do")
}

func TestRenderPodfileExplicitConfigMissing(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("--config", filepath.Join(env.dir, "nope.toml"), "render", "podfile")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRenderPodfileSetOverridesValuesFile(t *testing.T) {
	env := newCLIEnv(t)
	values := testutil.WriteFile(t, env.dir, "values.env", "TARGET_NAME=FromValues\nEXPOKIT_PATH=../\n")

	_, _, err := env.run("render", "podfile", "--sdk-version", "38.0.0", "--values", values, "--set", "TARGET_NAME=FromFlag", "-o", "Podfile")
	require.NoError(t, err)
	assert.Contains(t, string(env.sys.Files["Podfile"]), "target 'FromFlag' do")
}

func TestRenderPodfileTemplatesDir(t *testing.T) {
	env := newCLIEnv(t)
	tmpl := filepath.Join(env.dir, "tmpl")
	testutil.WriteFile(t, tmpl, "Podfile", "target '${TARGET_NAME}' do\n${EXPONENT_CLIENT_DEPS}\nend\n")
	testutil.WriteFile(t, tmpl, "dependencies.json", `[{"name":"Amplitude-iOS","version":"~> 4.0.4"}]`)

	_, _, err := env.run("render", "podfile", "--templates-dir", tmpl, "--set", "TARGET_NAME=App", "-o", "Podfile")
	require.NoError(t, err)
	assert.Equal(t,
		"target 'App' do\n  pod 'Amplitude-iOS', '~> 4.0.4', :inhibit_warnings => true\nend\n",
		string(env.sys.Files["Podfile"]))
}

func TestRenderPodspec(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("render", "podspec", "--client-version", "2.16.0")
	require.NoError(t, err)

	data := string(env.sys.Files["ExpoKit.podspec"])
	assert.True(t, strings.HasPrefix(data, "Pod::Spec.new do |s|"))
	assert.Contains(t, data, `s.version = "2.16.0"`)
	assert.Contains(t, data, "    ss.dependency 'Amplitude-iOS', '~> 4.0.4'")
}

func TestDiffSummary(t *testing.T) {
	d := "--- a\n+++ b\n@@ -1,2 +1,2 @@\n same\n-old\n+new\n+extra\n"
	assert.Equal(t, "2 added, 1 removed", diffSummary(preview.Diff{UnifiedDiff: d}))
	assert.Empty(t, diffSummary(preview.Diff{}))
}
