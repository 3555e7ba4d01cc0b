package orchestrator

// State is where the orchestrator is in the submission flow
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateLoading    State = "loading"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether s ends an attempt
func (s State) IsTerminal() bool {
	return s == StateSuccess || s == StateError
}

// User facing status messages
const (
	MessageInvalidURL      = "请输入有效的YouTube视频链接"
	MessageLoading         = "正在下载字幕，请稍候..."
	MessageSuccess         = "字幕下载成功！"
	FailurePrefix          = "下载字幕失败："
	ClipboardFailurePrefix = "无法访问剪贴板："
)
