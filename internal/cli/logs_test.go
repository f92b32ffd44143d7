package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

func setupLogsTest(t *testing.T, records []models.DecisionRecord) *decisionLogMock {
	t.Helper()

	origLog := DecisionLog
	origTier, origLimit := logsTier, logsLimit
	t.Cleanup(func() {
		DecisionLog = origLog
		logsTier, logsLimit = origTier, origLimit
	})

	mock := &decisionLogMock{records: records}
	DecisionLog = mock
	logsTier, logsLimit = "", 0
	return mock
}

func sampleRecords() []models.DecisionRecord {
	now := time.Now().UTC()
	return []models.DecisionRecord{
		{
			ID: "r1", Time: now.Add(-2 * time.Minute), Input: "headache",
			Decision: models.Decision{Tier: models.TierSelfCare, ReasonCode: "rule:selfcare:headache"},
		},
		{
			ID: "r2", Time: now.Add(-time.Minute), Input: "chest pain",
			Decision: models.Decision{Tier: models.TierEmergency, ReasonCode: "red_flag:chest pain"},
		},
	}
}

func TestLogsCmd_NilLog(t *testing.T) {
	orig := DecisionLog
	defer func() { DecisionLog = orig }()
	DecisionLog = nil

	if err := logsCmd.RunE(logsCmd, []string{}); err == nil {
		t.Fatal("expected error when DecisionLog is nil")
	}
}

func TestLogsCmd_ListsRecords(t *testing.T) {
	setupLogsTest(t, sampleRecords())

	var buf bytes.Buffer
	logsCmd.SetOut(&buf)
	defer logsCmd.SetOut(nil)

	if err := logsCmd.RunE(logsCmd, []string{}); err != nil {
		t.Fatalf("running logs: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "headache") || !strings.Contains(out, "chest pain") {
		t.Errorf("expected both inputs in output:\n%s", out)
	}
	if !strings.Contains(out, "red_flag:chest pain") {
		t.Errorf("expected reason codes in output:\n%s", out)
	}
}

func TestLogsCmd_TierFilter(t *testing.T) {
	setupLogsTest(t, sampleRecords())
	logsTier = "emergency"

	var buf bytes.Buffer
	logsCmd.SetOut(&buf)
	defer logsCmd.SetOut(nil)

	if err := logsCmd.RunE(logsCmd, []string{}); err != nil {
		t.Fatalf("running logs: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "headache") {
		t.Errorf("selfcare record should be filtered out:\n%s", out)
	}
	if !strings.Contains(out, "chest pain") {
		t.Errorf("emergency record should remain:\n%s", out)
	}
}

func TestLogsCmd_InvalidTier(t *testing.T) {
	setupLogsTest(t, nil)
	logsTier = "critical"

	err := logsCmd.RunE(logsCmd, []string{})
	if err == nil {
		t.Fatal("expected error for invalid tier")
	}
	if !strings.Contains(err.Error(), "critical") {
		t.Errorf("error should name the bad tier: %v", err)
	}
}

func TestLogsCmd_Empty(t *testing.T) {
	setupLogsTest(t, nil)

	var buf bytes.Buffer
	logsCmd.SetOut(&buf)
	defer logsCmd.SetOut(nil)

	if err := logsCmd.RunE(logsCmd, []string{}); err != nil {
		t.Fatalf("running logs: %v", err)
	}
	if !strings.Contains(buf.String(), "No decisions recorded") {
		t.Errorf("expected empty-log message, got:\n%s", buf.String())
	}
}
