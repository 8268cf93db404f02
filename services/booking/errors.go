package booking

// User-visible transient messages. All of them ride the normal card schema as
// ephemeral responses; only the text distinguishes the failure class.
const (
	msgSelectAll  = "회의실/시작/종료를 모두 선택해 주세요."
	msgBusy       = "⚠️ 선택한 시간에 해당 회의실은 이미 예약되어 있어요. 시간을 바꾸거나 다른 회의실을 선택해 주세요."
	msgLoadFailed = "⚠️ 예약 정보를 불러오지 못했어요. 잠시 후 다시 시도해 주세요."
	msgSaveFailed = "⚠️ 예약 저장에 실패했습니다. 잠시 후 다시 시도해 주세요."
)
