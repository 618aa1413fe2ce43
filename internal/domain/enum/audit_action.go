package enum

// AuditAction tags what kind of mutation an audit record describes. The set is
// open: new actions are added as new mutating operations appear.
type AuditAction string

const (
	AuditActionBillCreated           AuditAction = "BILL_CREATED"
	AuditActionBillPaid              AuditAction = "BILL_PAID"
	AuditActionOrderClosed           AuditAction = "ORDER_CLOSED"
	AuditActionSurplusMarkCreated    AuditAction = "SURPLUS_MARK_CREATED"
	AuditActionSurplusMarkDeleted    AuditAction = "SURPLUS_MARK_DELETED"
	AuditActionTableStatusChanged    AuditAction = "TABLE_STATUS_CHANGED"
	AuditActionTableAssignedWaiter   AuditAction = "TABLE_ASSIGNED_WAITER"
	AuditActionTableUnassignedWaiter AuditAction = "TABLE_UNASSIGNED_WAITER"
)

func (a AuditAction) String() string {
	return string(a)
}
