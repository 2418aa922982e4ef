package invitations_enums

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusExpired  InvitationStatus = "EXPIRED"
	InvitationStatusRevoked  InvitationStatus = "REVOKED"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending,
		InvitationStatusAccepted,
		InvitationStatusExpired,
		InvitationStatusRevoked:
		return true
	}

	return false
}
