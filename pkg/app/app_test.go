package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	assert := assert.New(t)

	args := []string{"-i", "-p", "*.py, *.pyc", "name", "-x=1", "-p", "a*"}

	assert.True(BoolArg("-i", false, &args))
	assert.False(BoolArg("-prefix", false, &args))
	assert.Equal("1", StringArg("-x", "", &args))
	assert.Equal("def", StringArg("-y", "def", &args))
	assert.Equal([]string{"*.py", "*.pyc", "a*"}, ListArg("-p", nil, &args))
	assert.Equal([]string{"d"}, ListArg("-q", []string{"d"}, &args))

	CleanArgs(&args)
	assert.Equal([]string{"name"}, args)
}

func TestStringArgMissingValue(t *testing.T) {
	assert := assert.New(t)

	args := []string{"a", "-c"}
	assert.Equal("def", StringArg("-c", "def", &args))
	CleanArgs(&args)
	assert.Equal([]string{"a"}, args)
}

func TestSplitByCommaOrSpaceAndTrim(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"a", "b", "c"}, SplitByCommaOrSpaceAndTrim(" a,b  c,, "))
	assert.Equal([]string{}, SplitByCommaOrSpaceAndTrim(""))
}

func TestHelp(t *testing.T) {
	assert := assert.New(t)

	cmds := []ProgramCommand{
		{Cmd: "match", Description: "Matches names.\nSecond line."},
		{Cmd: "tokens", Description: "Prints tokens.", Args: []ProgramCommandArg{
			{Arg: "<pattern>", Description: "The pattern."},
			{Arg: "-i", Description: "Case insensitive."},
		}},
	}

	assert.Nil(GetProgCommand(cmds, "nope"))
	cmd := GetProgCommand(cmds, "tokens")
	assert.Equal("tokens", cmd.Cmd)

	buf := &bytes.Buffer{}
	PrintHelpForCommands(buf, cmds)
	assert.Equal("match     Matches names.\n          Second line.\ntokens    Prints tokens.\n", buf.String())

	buf.Reset()
	PrintHelpForCommand(buf, cmd)
	out := buf.String()
	assert.Contains(out, "tokens <arguments>")
	assert.True(strings.HasSuffix(out, "<pattern>    The pattern.\n-i           Case insensitive.\n"))
}
