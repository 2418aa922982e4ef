package invitations_enums

type InvitationType string

const (
	InvitationTypeWorkspace InvitationType = "WORKSPACE"
	InvitationTypeProject   InvitationType = "PROJECT"
)
