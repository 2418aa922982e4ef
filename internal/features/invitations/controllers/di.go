package invitations_controllers

import (
	invitations_services "teamspace-backend/internal/features/invitations/services"
	users_services "teamspace-backend/internal/features/users/services"
)

var invitationController = &InvitationController{
	invitations_services.GetInvitationService(),
	users_services.GetUserService(),
}

func GetInvitationController() *InvitationController {
	return invitationController
}
