package expense

// ShouldKeep decides the fate of an expense when a month is closed out:
// active subscriptions and not-yet-fully-paid installments survive,
// everything else (single expenses, cancelled subscriptions, fully paid
// installments) is purged.
func ShouldKeep(e Expense) bool {
	if e.IsActiveSubscription() {
		return true
	}
	if e.HasPendingInstallments() {
		return true
	}
	return false
}

// Partition splits expenses into the KEEP and REMOVE sets of the monthly
// rollover. Input order is preserved within each set.
func Partition(expenses []Expense) (keep []Expense, remove []Expense) {
	for _, e := range expenses {
		if ShouldKeep(e) {
			keep = append(keep, e)
		} else {
			remove = append(remove, e)
		}
	}
	return keep, remove
}

// AdvanceInstallment returns a copy of the expense with its installment
// counter moved forward by one. The counter never passes the total: a fully
// paid installment is returned unchanged (the next rollover removes it).
func AdvanceInstallment(e Expense) Expense {
	if !e.HasPendingInstallments() {
		return e
	}
	installment := *e.Installment
	installment.CurrentInstallment++
	e.Installment = &installment
	return e
}
