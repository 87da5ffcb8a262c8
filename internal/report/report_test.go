package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgesim/smithg/internal/engine"
)

var sample = []engine.Result{
	{Name: "work_bot", Balance: 1234567},
	{Name: "random_bot_3", Balance: -250},
}

func TestTextHumanizesBalances(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sample))

	out := buf.String()
	require.Contains(t, out, "work_bot")
	require.Contains(t, out, "1,234,567")
	require.Contains(t, out, "-250")
}

func TestJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sample))

	var decoded []engine.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sample, decoded)
}

func TestCSVFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sample))

	want := "agent_name,balance\nwork_bot,1234567\nrandom_bot_3,-250\n"
	require.Equal(t, want, buf.String())
}

func TestWriteDispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sample))
	require.Contains(t, buf.String(), "agent_name,balance")

	require.Error(t, Write(&buf, "xml", sample))
}
