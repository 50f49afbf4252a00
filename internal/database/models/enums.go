package models

// Role identifies the kind of actor invoking an operation
type Role string

const (
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
	RoleAdmin   Role = "Admin"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// RequestStatus is the lifecycle state of a TeamRequest
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// ProgressStatus is the overall status of a team's project
type ProgressStatus string

const (
	ProgressStatusNotStarted               ProgressStatus = "Not Started"
	ProgressStatusPending                  ProgressStatus = "Pending"
	ProgressStatusMentorAssigned           ProgressStatus = "Mentor Assigned"
	ProgressStatusProblemStatementAssigned ProgressStatus = "Problem Statement Assigned"
	ProgressStatusInProgress               ProgressStatus = "In Progress"
	ProgressStatusCompleted                ProgressStatus = "Completed"
)

// IsValid checks if the ProgressStatus is valid
func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusNotStarted, ProgressStatusPending, ProgressStatusMentorAssigned,
		ProgressStatusProblemStatementAssigned, ProgressStatusInProgress, ProgressStatusCompleted:
		return true
	}
	return false
}

// InvitationStatus is the aggregate status of a MeetingInvitation
type InvitationStatus string

const (
	InvitationStatusPending         InvitationStatus = "Pending"
	InvitationStatusAccepted        InvitationStatus = "Accepted"
	InvitationStatusRejected        InvitationStatus = "Rejected"
	InvitationStatusCancelled       InvitationStatus = "Cancelled"
	InvitationStatusCompleted       InvitationStatus = "Completed"
	InvitationStatusAddedToProgress InvitationStatus = "AddedToProgress"
)

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRejected,
		InvitationStatusCancelled, InvitationStatusCompleted, InvitationStatusAddedToProgress:
		return true
	}
	return false
}

// InvitationResponse is one student's answer to a MeetingInvitation
type InvitationResponse string

const (
	ResponsePending  InvitationResponse = "Pending"
	ResponseAccepted InvitationResponse = "Accepted"
	ResponseRejected InvitationResponse = "Rejected"
	ResponseAttended InvitationResponse = "Attended"
)

// IsValid checks if the InvitationResponse is valid
func (r InvitationResponse) IsValid() bool {
	switch r {
	case ResponsePending, ResponseAccepted, ResponseRejected, ResponseAttended:
		return true
	}
	return false
}

// NotificationType drives how a notification is rendered
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationDanger  NotificationType = "danger"
	NotificationWarning NotificationType = "warning"
)

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationDanger, NotificationWarning:
		return true
	}
	return false
}
