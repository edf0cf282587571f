package domain

// Platform identifica a rede social de origem de um registro
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformPinterest Platform = "pinterest"
)

// Platforms lista todas as plataformas suportadas
var Platforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformTikTok,
	PlatformYouTube,
	PlatformPinterest,
}

func (p Platform) IsValid() bool {
	for _, platform := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
