package shell

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"
	"github.com/joshyorko/cratebom/common"
)

type Task struct {
	environment []string
	directory   string
	executable  string
	args        []string
}

func New(environment []string, directory string, task ...string) *Task {
	executable, args := task[0], task[1:]
	return &Task{
		environment: environment,
		directory:   directory,
		executable:  executable,
		args:        args,
	}
}

func Split(commandline string) ([]string, error) {
	return shlex.Split(commandline)
}

func (it *Task) command() *exec.Cmd {
	command := exec.Command(it.executable, it.args...)
	command.Dir = it.directory
	command.Env = it.environment
	command.Stderr = os.Stderr
	return command
}

func (it *Task) wait(command *exec.Cmd) (int, error) {
	err := command.Wait()
	if command.ProcessState == nil {
		return -500, err
	}
	return command.ProcessState.ExitCode(), err
}

// Execute runs the task with both output streams passed through verbatim.
func (it *Task) Execute(interactive bool) (int, error) {
	command := it.command()
	command.Stdout = os.Stdout
	if interactive {
		command.Stdin = os.Stdin
	}
	common.Trace("Execute %q with arguments %q", it.executable, it.args)
	if err := command.Start(); err != nil {
		return -500, fmt.Errorf("failed to start %q: %w", it.executable, err)
	}
	return it.wait(command)
}

// Output runs the task capturing its full stdout, with stderr passed
// through.
func (it *Task) Output() ([]byte, int, error) {
	command := it.command()
	stdout := new(bytes.Buffer)
	command.Stdout = stdout
	common.Trace("Output %q with arguments %q", it.executable, it.args)
	if err := command.Start(); err != nil {
		return nil, -500, fmt.Errorf("failed to start %q: %w", it.executable, err)
	}
	code, err := it.wait(command)
	return stdout.Bytes(), code, err
}

// Stream runs the task feeding every stdout line to consume, strictly in
// emit order, with stderr passed through. A consume failure stops reading
// but the child is still waited on, so the exit code is always known; the
// consume failure wins over a plain non-zero exit.
func (it *Task) Stream(consume func(line string) error) (int, error) {
	command := it.command()
	pipe, err := command.StdoutPipe()
	if err != nil {
		return -500, fmt.Errorf("failed to pipe %q: %w", it.executable, err)
	}
	common.Trace("Stream %q with arguments %q", it.executable, it.args)
	if err := command.Start(); err != nil {
		return -500, fmt.Errorf("failed to start %q: %w", it.executable, err)
	}
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 256*1024), 16*1024*1024)
	var broken error
	for scanner.Scan() {
		if broken = consume(scanner.Text()); broken != nil {
			break
		}
	}
	if broken == nil {
		broken = scanner.Err()
	}
	if broken != nil {
		// keep draining so the child never blocks on a full pipe
		go io.Copy(io.Discard, pipe)
	}
	code, err := it.wait(command)
	if broken != nil {
		return code, broken
	}
	return code, err
}
