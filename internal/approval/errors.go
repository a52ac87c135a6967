package approval

import "errors"

var (
	// ErrNoApprovedMergersFound is returned when an allowlist rule leaves no approver
	ErrNoApprovedMergersFound = errors.New("no approved mergers were found in comments")
	// ErrOwnerCannotMergeOwnCode is returned when only the pull request owner approved
	ErrOwnerCannotMergeOwnCode = errors.New("owner cannot ship their own code")
	// ErrNoMergeCommentFound is returned when no fresh comment carries the merge marker
	ErrNoMergeCommentFound = errors.New("there are no merge comments associated with this PR")
	// ErrFileAccess is returned when the approved mergers file cannot be read
	ErrFileAccess = errors.New("approved mergers file could not be read")
	// ErrInvalidPattern is returned when the merge comment is not a valid regular expression
	ErrInvalidPattern = errors.New("invalid merge comment pattern")
)

// Kind classifies an approval failure
type Kind string

const (
	KindNone              Kind = ""
	KindNoApprovedMergers Kind = "no_approved_mergers"
	KindOwnerCannotMerge  Kind = "owner_cannot_merge"
	KindNoMergeComment    Kind = "no_merge_comment"
	KindFileAccess        Kind = "file_access"
	KindUnknown           Kind = "unknown"
)

// KindOf maps an error returned by this package to its kind
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNoApprovedMergersFound):
		return KindNoApprovedMergers
	case errors.Is(err, ErrOwnerCannotMergeOwnCode):
		return KindOwnerCannotMerge
	case errors.Is(err, ErrNoMergeCommentFound):
		return KindNoMergeComment
	case errors.Is(err, ErrFileAccess):
		return KindFileAccess
	default:
		return KindUnknown
	}
}
