package discover

import "strings"

// TagKey is the struct tag that opts a member into manual mode.
const TagKey = "rc"

// tagInfo is the parsed form of an `rc` tag:
//
//	rc:"[remoteKey][,nopersist][,nosync]"
//	rc:"-"
//
// An empty remote key keeps the member name. "-" excludes the member while
// still counting as tagged, so it flips the group into manual mode like
// any other tag.
type tagInfo struct {
	key       string
	nopersist bool
	nosync    bool
	skip      bool
}

// parseTag parses the tag value. The tagged result is false when the
// member carries no rc tag at all.
func parseTag(tag string, present bool) (tagInfo, bool) {
	if !present {
		return tagInfo{}, false
	}

	if tag == "-" {
		return tagInfo{skip: true}, true
	}

	var info tagInfo

	for i, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		switch {
		case i == 0:
			info.key = part
		case part == "nopersist":
			info.nopersist = true
		case part == "nosync":
			info.nosync = true
		}
	}

	return info, true
}

// memberTag extracts and parses the rc tag of a member.
func memberTag(m *Member) (tagInfo, bool) {
	tag, present := m.Tag.Lookup(TagKey)
	return parseTag(tag, present)
}
