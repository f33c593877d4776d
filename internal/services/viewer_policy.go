package services

import "github.com/terraincognita07/cyclecast/internal/models"

func IsOwnerUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleOwner
}

func IsPartnerUser(user *models.User) bool {
	return user != nil && user.Role == models.RolePartner
}

// CanEditRecords reports whether the viewer may change cycle data. Partners
// only read predictions.
func CanEditRecords(user *models.User) bool {
	return IsOwnerUser(user)
}
