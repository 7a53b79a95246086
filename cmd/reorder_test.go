package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
	domainmocks "dreamsort.dev/pkg/dreamsort/internal/domain/mocks"
)

func TestReorderCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newReorderCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Reorder", mock.Anything, mock.MatchedBy(func(args domain.ReorderArgs) bool {
		return args.Mod == "Alpha" && args.Rank == 2
	})).Return(nil)

	cmd.SetArgs([]string{"reorder", "Alpha", "2"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestReorderCmd_InvalidRank(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newReorderCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"reorder", "Alpha", "second"})
	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid rank")
}

func TestInstallCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInstallCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Install", mock.Anything, mock.MatchedBy(func(args domain.InstallArgs) bool {
		return string(args.Source) == "/downloads/FancyMod" && args.Name == "Renamed"
	})).Return(nil)

	cmd.SetArgs([]string{"install", "/downloads/FancyMod", "--name", "Renamed"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRemoveCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRemoveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Remove", mock.Anything, mock.MatchedBy(func(args domain.RemoveArgs) bool {
		return args.Mod == "Alpha"
	})).Return(nil)

	cmd.SetArgs([]string{"remove", "Alpha"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}
