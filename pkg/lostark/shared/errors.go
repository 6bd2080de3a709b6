package shared

import "errors"

// Failure taxonomy for a single command invocation. All of these are caught at
// the command boundary and translated to a fixed Korean status string; none is
// process-fatal.
var (
	// ErrUpstreamUnavailable covers unreachable remote API or non-2xx status.
	ErrUpstreamUnavailable = errors.New("lostark api unavailable")

	// ErrNoData covers a successful response with an empty or non-list body.
	ErrNoData = errors.New("no expedition data")

	// ErrMalformedData covers unparsable numeric fields in the response.
	ErrMalformedData = errors.New("malformed expedition data")

	// ErrStoreFailure covers transaction-level persistence failures.
	ErrStoreFailure = errors.New("expedition store failure")
)

// Fixed user-facing messages, carried over verbatim from the bot's Korean UI.
const (
	MsgFetchFailed   = "원정대 정보를 불러오는 데 실패했습니다."
	MsgNoData        = "유효한 원정대 정보를 찾을 수 없습니다."
	MsgProcessFailed = "원정대 정보를 가공하는 데 실패했습니다."
	MsgStoreFailed   = "원정대 정보를 저장하는 데 실패했습니다."
	MsgNoSaved       = "저장된 원정대 정보가 없습니다."
)

// MessageFor maps a taxonomy error to its user-facing Korean string.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamUnavailable):
		return MsgFetchFailed
	case errors.Is(err, ErrNoData):
		return MsgNoData
	case errors.Is(err, ErrMalformedData):
		return MsgProcessFailed
	case errors.Is(err, ErrStoreFailure):
		return MsgStoreFailed
	default:
		return MsgFetchFailed
	}
}
