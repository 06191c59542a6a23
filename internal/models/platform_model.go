package models

const (
	PlatformYoutube   = "youtube"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedin  = "linkedin"
	PlatformTwitter   = "twitter"
)

var SupportedPlatforms = []string{
	PlatformYoutube,
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedin,
	PlatformTwitter,
}

func IsSupportedPlatform(platform string) bool {
	for _, p := range SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
