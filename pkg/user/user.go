package user

type User struct {
	Id          int
	Uid         string // Firebase Auth UID
	DisplayName string
	Email       string
	FcmToken    string
	Settings    Settings
}

type Settings struct {
	Timezone string
}
