// Package branch contains the branch-state resolution logic: interpreting a
// user-supplied branch name as a local/remote-tracking pair and classifying
// how a local branch relates to its remote counterpart.
package branch

import (
	"strings"

	"ezgit.dev/ezgit/internal/git"
)

// Resolved is the result of interpreting a user-supplied branch name against
// the repository. Exactly one of LocalName/RemoteName is the raw input; the
// other is synthesized from it.
type Resolved struct {
	LocalName    string
	LocalExists  bool
	RemoteName   string
	RemoteExists bool
}

// RemoteTrackingName builds the remote-tracking form of a local branch name.
func RemoteTrackingName(remote, local string) string {
	return remote + "/" + local
}

// Resolve interprets input as either a local branch name or a
// "<remote>/<branch>" remote-tracking name and probes which of the two
// candidates exist.
//
// Local existence is probed only when the input was NOT remote-prefixed: a
// remote-prefixed input identifies the remote side, and callers on that path
// never consult LocalExists. Probing the stripped name anyway would change
// the contract switch and delete rely on, so the asymmetry is deliberate.
func Resolve(g *git.Git, remote, input string) (Resolved, error) {
	prefix := remote + "/"
	res := Resolved{}

	if strings.HasPrefix(input, prefix) {
		res.RemoteName = input
		res.LocalName = strings.TrimPrefix(input, prefix)
	} else {
		res.LocalName = input
		res.RemoteName = prefix + input

		exists, err := g.RefExists(res.LocalName)
		if err != nil {
			return Resolved{}, err
		}
		res.LocalExists = exists
	}

	exists, err := g.RefExists(res.RemoteName)
	if err != nil {
		return Resolved{}, err
	}
	res.RemoteExists = exists

	return res, nil
}
