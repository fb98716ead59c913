package zapkey

// General Keys
const (
	Count    = "count"
	Data     = "data"
	ID       = "id"
	Name     = "name"
	Type     = "type"
	UserID   = "user_id"
	UserName = "user"
)

// HTTP Request Keys
const (
	Method = "method"
	Path   = "path"
	Port   = "port"
	Status = "status"
	URL    = "url"
)

// Bot Conversation Keys
const (
	ChannelID  = "channel_id"
	Command    = "command"
	Content    = "content"
	Message    = "message"
	PlaylistID = "playlist_id"
	Query      = "query"
	Reply      = "reply"
	Stage      = "stage"
	TrackID    = "track_id"
	TrackIDs   = "track_ids"
	TrackURIs  = "track_uris"
)
