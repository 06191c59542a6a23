package transfer

type LinkedinNetworkResponse struct {
	FirstDegreeSize int64 `json:"firstDegreeSize"`
}

type LinkedinTokenResponse struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int64  `json:"expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}
