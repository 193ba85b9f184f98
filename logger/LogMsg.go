package logger

const SessionStartMsg = "session started, field %dx%d at %d fps"
const SessionEndMsg = "session ended, final score %d:%d after %d frames"
const SessionSummaryMsg = "frames=%.0f hits(left=%.0f right=%.0f) goals(left=%.0f right=%.0f) resets=%.0f"

const PaddleHitMsg = "%s paddle hit, ball dy=%.2f"
const GoalMsg = "%s player scored, score %d:%d"
const ResetMsg = "match reset at %d:%d"
const QuitMsg = "quit requested"

const ScreenInitFailedMsg = "terminal init failed: %w"
const LoopFailedMsg = "game loop stopped: %w"
