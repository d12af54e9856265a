package audit

// DocumentSeed is one row of the fixed document checklist catalog.
type DocumentSeed struct {
	Number      string
	Category    string
	Level       string
	Name        string
	Responsible string
	Timing      string
}

// DefaultDocumentCatalog is the document checklist every new project is seeded with.
var DefaultDocumentCatalog = []DocumentSeed{
	// General
	{Number: "0", Category: "General", Level: "INFO / PREPA", Name: "Factory / premises map", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "1", Category: "General", Level: "INFO / PREPA", Name: "Fire protection system drawing", Responsible: "", Timing: ""},
	{Number: "2", Category: "General", Level: "INFO / PREPA", Name: "Organizational chart", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "3", Category: "General", Level: "INFO / PREPA", Name: "Production Flow Charts", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "4", Category: "General", Level: "INFO / PREPA", Name: "The staff list", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "5", Category: "General", Level: "INFO / PREPA", Name: "All former Social compliance audit reports and certification, if any", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "6", Category: "General", Level: "INFO / PREPA", Name: "Factory risk analysis", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	{Number: "7", Category: "General", Level: "INFO / PREPA", Name: "Chemicals substance inventory", Responsible: "", Timing: "To be transmitted to the assessor before the evaluation"},
	// Child Labour
	{Number: "8", Category: "Child Labour", Level: "INFO / PREPA", Name: "List of the young workers (birth date, contract date,working station name,gender )", Responsible: "HR", Timing: ""},
	{Number: "9", Category: "Child Labour", Level: "INFO / PREPA", Name: "List of children ( If family staying with children in the dormitories)", Responsible: "HR", Timing: ""},
	{Number: "10", Category: "Child Labour", Level: "0. UNACCEPTABLE", Name: "List of the workers ( birth date ,contract date,working place,gender)", Responsible: "HR", Timing: ""},
	{Number: "11", Category: "Child Labour", Level: "1. CONSOLIDATED", Name: "List & management policy if family staying with children in the dormitories", Responsible: "HR", Timing: ""},
	{Number: "12", Category: "Child Labour", Level: "1. CONSOLIDATED", Name: "Factory entire procedure / policy which is linked to the child enterance to the premises", Responsible: "HR", Timing: ""},
	{Number: "13", Category: "Child Labour", Level: "1. CONSOLIDATED", Name: "Proof of Age documentation ( example: ID card copy, passport copy etc.)", Responsible: "HR", Timing: ""},
	{Number: "14", Category: "Child Labour", Level: "2. ADVANCED", Name: "Child labor and young worker policy or procedure", Responsible: "HR", Timing: ""},
	{Number: "15", Category: "Child Labour", Level: "2. ADVANCED", Name: "Formalized procedure to ensure the detection, prevention and remediation of child labor and the well-being of young workers", Responsible: "HR", Timing: ""},
	{Number: "16", Category: "Child Labour", Level: "3. EXCELLENCE", Name: "A document/presentation/files proving the involvement of the supplier on education support", Responsible: "MANAGEMENT", Timing: ""},
	// Forced Labour
	{Number: "17", Category: "Forced Labour", Level: "INFO / PREPA", Name: "List & management policy for foreign workers", Responsible: "HR", Timing: ""},
	{Number: "18", Category: "Forced Labour", Level: "1. CONSOLIDATED", Name: "Copy of work permit for foreign worker", Responsible: "HR", Timing: ""},
	{Number: "19", Category: "Forced Labour", Level: "1. CONSOLIDATED", Name: "List of recruitment agency/broker & business/operating license for them", Responsible: "HR", Timing: ""},
	{Number: "20", Category: "Forced Labour", Level: "1. CONSOLIDATED", Name: "Overtime agrement which is signed by employee", Responsible: "HR", Timing: ""},
	{Number: "21", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Ethical recruitment policy/procedure", Responsible: "HR", Timing: ""},
	{Number: "22", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Contract with external hiring agency/labor agent/broker", Responsible: "HR", Timing: ""},
	{Number: "23", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Risk mapping and due diligence report", Responsible: "HR", Timing: ""},
	{Number: "24", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Proof of payment of fees associated with the contract (e.g, visas, transportation to country/province, repatriation, medical & in-transit)", Responsible: "HR / Accounting", Timing: ""},
	{Number: "25", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Training records / program documents or similar proofing pre-departure and post-arrival orientation", Responsible: "HR / Accounting", Timing: ""},
	{Number: "26", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Proof of payment of terminated migrant workers", Responsible: "HR / Accounting", Timing: ""},
	{Number: "27", Category: "Forced Labour", Level: "2. ADVANCED", Name: "Contract, signed code of conduct, training documents informing Rank 2 suppliers on forced labor risk", Responsible: "HR / Legal / Purchasing", Timing: ""},
	// Freedom of Association
	{Number: "28", Category: "Freedom of Association", Level: "1. CONSOLIDATED", Name: "List of Unions present in the company", Responsible: "HR", Timing: ""},
	{Number: "29", Category: "Freedom of Association", Level: "1. CONSOLIDATED", Name: "Last agreement between Unions and Management", Responsible: "HR", Timing: ""},
	{Number: "30", Category: "Freedom of Association", Level: "1. CONSOLIDATED", Name: "Last election documents for Union and workers representatives (preparation, candidates application, participation, results)", Responsible: "HR", Timing: ""},
	{Number: "31", Category: "Freedom of Association", Level: "1. CONSOLIDATED", Name: "OSH commitee meeting schedule", Responsible: "", Timing: ""},
	{Number: "32", Category: "Freedom of Association", Level: "2. ADVANCED", Name: "Meeting minutes between representatives and managements (OSH)", Responsible: "", Timing: ""},
	{Number: "33", Category: "Freedom of Association", Level: "2. ADVANCED", Name: "Grievance procedure or policy", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "34", Category: "Freedom of Association", Level: "2. ADVANCED", Name: "Last two worker voice / worker happiness / engagement and wellbeing reports and corrective action plans", Responsible: "MANAGEMENT", Timing: ""},
	// Legal Authorizations
	{Number: "35", Category: "Legal Authorizations", Level: "1. CONSOLIDATED", Name: "Factory License / Business License / National tax and land tax registration", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "36", Category: "Legal Authorizations", Level: "1. CONSOLIDATED", Name: "Fire department inspection certificate/ Local safety authority inspection report", Responsible: "H&S", Timing: ""},
	{Number: "37", Category: "Legal Authorizations", Level: "1. CONSOLIDATED", Name: "Electrical maintenance and external inspection records", Responsible: "H&S", Timing: ""},
	{Number: "38", Category: "Legal Authorizations", Level: "1. CONSOLIDATED", Name: "Forklift, lifts, automatics doors, boiler, compressors, pressurized tanks, crane… valid inspection certificates/reports", Responsible: "H&S", Timing: ""},
	{Number: "39", Category: "Legal Authorizations", Level: "1. CONSOLIDATED", Name: "Licences (or Trainings) to operate the forklifts, lifts", Responsible: "H&S", Timing: ""},
	{Number: "40", Category: "Legal Authorizations", Level: "2. ADVANCED", Name: "Expiry date alert for the legal authorization and certification", Responsible: "H&S", Timing: ""},
	{Number: "41", Category: "Legal Authorizations", Level: "2. ADVANCED", Name: "Verification records and maintenance planning per equipment", Responsible: "H&S", Timing: ""},
	{Number: "42", Category: "Legal Authorizations", Level: "2. ADVANCED", Name: "Preventive Maintenance plan and inspection records", Responsible: "H&S", Timing: ""},
	// Risk & Safety
	{Number: "43", Category: "Risk and Safety", Level: "INFO / PREPA", Name: "List of pregnant / in maternity leave / breastfeeding workers", Responsible: "H&S", Timing: ""},
	{Number: "44", Category: "Risk and Safety", Level: "0. UNACCEPTABLE", Name: "Stability certificate of buildings and infrastructure", Responsible: "HR", Timing: ""},
	{Number: "45", Category: "Risk and Safety", Level: "0. UNACCEPTABLE", Name: "Written procedure to manage a worker during her pregnancy", Responsible: "H&S", Timing: ""},
	{Number: "46", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "Temperature monitoring records", Responsible: "H&S", Timing: ""},
	{Number: "47", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "Lighting monitoring records", Responsible: "H&S", Timing: ""},
	{Number: "48", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "Air quality monitoring records", Responsible: "", Timing: ""},
	{Number: "49", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "PPE list", Responsible: "H&S", Timing: ""},
	{Number: "50", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "First aid kit list and expiry follow-up", Responsible: "H&S", Timing: ""},
	{Number: "51", Category: "Risk and Safety", Level: "1. CONSOLIDATED", Name: "Workplace risk assessment with CAP actions", Responsible: "H&S", Timing: ""},
	{Number: "52", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Risk assessment showing preventive actions", Responsible: "H&S", Timing: ""},
	{Number: "53", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Lock out and tag out procedure for maintenance", Responsible: "H&S", Timing: ""},
	{Number: "54", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Records of injuries/accidents/illnesses & annual summary", Responsible: "", Timing: ""},
	{Number: "55", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Procedure/policy on injury and illness management", Responsible: "", Timing: ""},
	{Number: "56", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Noise measurement record (third party or internal)", Responsible: "", Timing: ""},
	{Number: "57", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Documents on H&S program (training records, schedule, awareness days, board/newsletter…)", Responsible: "", Timing: ""},
	{Number: "58", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Medical examination records, nursery records", Responsible: "", Timing: ""},
	{Number: "59", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "SOP on risky workstation", Responsible: "", Timing: ""},
	{Number: "60", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Health & safety committee records (agenda, participants, minutes)", Responsible: "", Timing: ""},
	{Number: "61", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Managers/supervisors/line leaders H&S training records", Responsible: "", Timing: ""},
	{Number: "62", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "First Aid Training records & list trained per shift", Responsible: "", Timing: ""},
	{Number: "63", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Clinic/first aid station doctor or nurse qualification certificate", Responsible: "", Timing: ""},
	{Number: "64", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Listing of vulnerable employees (disabled, pregnant, breastfeeding, young workers…)", Responsible: "HR OR H&S", Timing: ""},
	{Number: "65", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Formal emergency response plan for serious accidents/emergencies", Responsible: "H&S", Timing: ""},
	{Number: "66", Category: "Risk and Safety", Level: "2. ADVANCED", Name: "Job description/certificates/CV of person responsible for H&S management", Responsible: "", Timing: ""},
	{Number: "67", Category: "Risk and Safety", Level: "3. EXCELLENCE", Name: "Health & safety strategic plan/project", Responsible: "H&S", Timing: ""},
	{Number: "68", Category: "Risk and Safety", Level: "3. EXCELLENCE", Name: "Third-party Certification of Health & Safety system", Responsible: "H&S", Timing: ""},
	// Chemical
	{Number: "70", Category: "Chemical Management", Level: "0. UNACCEPTABLE", Name: "List for pregnant/breastfeeding women & pregnancy management procedure", Responsible: "H&S", Timing: ""},
	{Number: "71", Category: "Chemical Management", Level: "0. UNACCEPTABLE", Name: "List of T/CMR present and used", Responsible: "H&S", Timing: ""},
	{Number: "72", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Inventory list of chemicals used", Responsible: "H&S", Timing: ""},
	{Number: "73", Category: "Chemical Management", Level: "", Name: "Safety Data sheets of chemicals used", Responsible: "", Timing: ""},
	{Number: "74", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Follow up - Time management of PPE", Responsible: "H&S", Timing: ""},
	{Number: "75", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Procedure for collective protective equipment + maintenance reports", Responsible: "", Timing: ""},
	{Number: "76", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Internal air quality report for chemical areas", Responsible: "H&S", Timing: ""},
	{Number: "77", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Medical exam report", Responsible: "H&S", Timing: ""},
	{Number: "78", Category: "Chemical Management", Level: "2. ADVANCED", Name: "SOP for workstation using chemicals", Responsible: "H&S", Timing: ""},
	{Number: "79", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Emergency procedure related to chemical accidents", Responsible: "H&S", Timing: ""},
	{Number: "80", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Accidents record linked to chemicals", Responsible: "H&S", Timing: ""},
	{Number: "81", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Emergency exercises linked to chemical record", Responsible: "", Timing: ""},
	{Number: "82", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Procedure to validate chemicals to be purchased and rank chemicals used", Responsible: "H&S", Timing: ""},
	{Number: "83", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Chemical safety/storage manager job letter", Responsible: "H&S", Timing: ""},
	{Number: "84", Category: "Chemical Management", Level: "2. ADVANCED", Name: "Training records on Chemicals", Responsible: "H&S", Timing: ""},
	{Number: "86", Category: "Chemical Management", Level: "3. EXCELLENCE", Name: "Training records on Chemicals", Responsible: "H&S", Timing: ""},
	// Fire Safety
	{Number: "87", Category: "Fire Safety", Level: "1. CONSOLIDATED", Name: "Fire Drill - Evacuation Records", Responsible: "H&S", Timing: ""},
	{Number: "88", Category: "Fire Safety", Level: "1. CONSOLIDATED", Name: "Maintenance/Follow up Records of Alarm Backup Battery + manual book + working flow", Responsible: "H&S", Timing: ""},
	{Number: "89", Category: "Fire Safety", Level: "1. CONSOLIDATED", Name: "Emergency Lighting System maintenance/follow up", Responsible: "H&S", Timing: ""},
	{Number: "90", Category: "Fire Safety", Level: "1. CONSOLIDATED", Name: "Fire & smoke proof doors certification", Responsible: "H&S", Timing: ""},
	{Number: "91", Category: "Fire Safety", Level: "1. CONSOLIDATED", Name: "Fire emergency procedure/protocol", Responsible: "H&S", Timing: ""},
	{Number: "92", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Updated evacuation map", Responsible: "H&S", Timing: ""},
	{Number: "93", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Maintenance records/certification of fire safety equipment", Responsible: "H&S", Timing: ""},
	{Number: "94", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Training records on basic fire safety", Responsible: "H&S", Timing: ""},
	{Number: "95", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Fire safety procedure (prevention, protection, precaution, emergency response)", Responsible: "H&S", Timing: ""},
	{Number: "96", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Training records on implementation + roles in emergency + list of special roles", Responsible: "H&S", Timing: ""},
	{Number: "97", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Job description/certificates/CV of responsible people for fire safety", Responsible: "H&S", Timing: ""},
	{Number: "98", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Fire fighting training records per shift (extinguishers, hydrants/hose, evacuation)", Responsible: "H&S", Timing: ""},
	{Number: "99", Category: "Fire Safety", Level: "2. ADVANCED", Name: "Sprinkler system flow if necessary", Responsible: "H&S", Timing: ""},
	// Living Env
	{Number: "100", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "Drinking water testing records", Responsible: "H&S", Timing: ""},
	{Number: "101", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "Kitchen/canteen hygiene certificate", Responsible: "H&S", Timing: ""},
	{Number: "102", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "Kitchen/canteen worker’s health certificate", Responsible: "HR", Timing: ""},
	{Number: "103", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "Supplier Dormitory Guidelines (if dormitory)", Responsible: "H&S", Timing: ""},
	{Number: "104", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "List of transportation routes and workers who benefit it", Responsible: "", Timing: ""},
	{Number: "105", Category: "Living Environment", Level: "1. CONSOLIDATED", Name: "Check driving permit", Responsible: "HR", Timing: ""},
	{Number: "106", Category: "Living Environment", Level: "2. ADVANCED", Name: "Official Document for Kinder garden", Responsible: "H&S", Timing: ""},
	{Number: "107", Category: "Living Environment", Level: "2. ADVANCED", Name: "Check medical certificate of the drivers", Responsible: "HR", Timing: ""},
	{Number: "108", Category: "Living Environment", Level: "2. ADVANCED", Name: "Records showing monthly room/board fees charged", Responsible: "HR", Timing: ""},
	{Number: "109", Category: "Living Environment", Level: "2. ADVANCED", Name: "Vehicle maintenance plan/schedule + records/invoices", Responsible: "MAINTENANCE", Timing: ""},
	{Number: "110", Category: "Living Environment", Level: "3. EXCELLENCE", Name: "Transportation allowance documents/equivalent value per worker", Responsible: "HR", Timing: ""},
	{Number: "111", Category: "Living Environment", Level: "3. EXCELLENCE", Name: "Meal allowance documents/equivalent value per worker", Responsible: "HR", Timing: ""},
	{Number: "112", Category: "Living Environment", Level: "3. EXCELLENCE", Name: "Official Document for Religion Facility", Responsible: "HR", Timing: ""},
	{Number: "113", Category: "Living Environment", Level: "3. EXCELLENCE", Name: "Free dormitory / housing allowance documents", Responsible: "HR", Timing: ""},
	// Working Hours
	{Number: "114", Category: "Working Hours", Level: "1. CONSOLIDATED", Name: "Working hour records + policy (breaks, operating hours, days off, OT policy)", Responsible: "HR", Timing: ""},
	{Number: "115", Category: "Working Hours", Level: "1. CONSOLIDATED", Name: "Production planning (piece rate)", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "116", Category: "Working Hours", Level: "2. ADVANCED", Name: "Working hours policy", Responsible: "HR", Timing: ""},
	{Number: "117", Category: "Working Hours", Level: "3. EXCELLENCE", Name: "Seasonal working hour planning + emergency plan", Responsible: "HR", Timing: ""},
	// Compensation
	{Number: "118", Category: "Compensation", Level: "1. CONSOLIDATED", Name: "Payroll records/calculation + production records", Responsible: "HR", Timing: ""},
	{Number: "119", Category: "Compensation", Level: "1. CONSOLIDATED", Name: "Local official minimum wage document", Responsible: "HR", Timing: ""},
	{Number: "120", Category: "Compensation", Level: "1. CONSOLIDATED", Name: "Social Insurance payment slips", Responsible: "HR", Timing: ""},
	{Number: "121", Category: "Compensation", Level: "1. CONSOLIDATED", Name: "Terminated employee list", Responsible: "HR", Timing: ""},
	{Number: "122", Category: "Compensation", Level: "1. CONSOLIDATED", Name: "Wage deduction policy and records", Responsible: "HR", Timing: ""},
	{Number: "123", Category: "Compensation", Level: "2. ADVANCED", Name: "Wage bonus policy and records", Responsible: "HR", Timing: ""},
	{Number: "124", Category: "Compensation", Level: "2. ADVANCED", Name: "Salary matrix", Responsible: "HR", Timing: ""},
	// HR Management
	{Number: "125", Category: "HR Management", Level: "INFO / PREPA", Name: "Number of men/women employed", Responsible: "HR", Timing: ""},
	{Number: "126", Category: "HR Management", Level: "INFO / PREPA", Name: "Number of short term/temporary contract", Responsible: "HR", Timing: ""},
	{Number: "127", Category: "HR Management", Level: "INFO / PREPA", Name: "Number employed by external company and roles", Responsible: "HR", Timing: ""},
	{Number: "128", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "In-house Regulations", Responsible: "HR", Timing: ""},
	{Number: "129", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "Local collective bargaining agreement (if any)", Responsible: "HR", Timing: ""},
	{Number: "130", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "All factory rules/regulations/policy + dormitory rules + bonus/penalty records", Responsible: "HR", Timing: ""},
	{Number: "131", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "All factory rules/regulations/policy + dormitory rules + bonus/penalty records", Responsible: "HR", Timing: ""},
	{Number: "132", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "Recruitment agency contract (if supplier is third party)", Responsible: "HR", Timing: ""},
	{Number: "133", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "Social insurance & health insurance compensation records", Responsible: "HR", Timing: ""},
	{Number: "134", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "Social insurance receipts", Responsible: "HR", Timing: ""},
	{Number: "135", Category: "HR Management", Level: "1. CONSOLIDATED", Name: "List of short-term/temporary contracts + duration + renewals", Responsible: "HR", Timing: ""},
	{Number: "136", Category: "HR Management", Level: "2. ADVANCED", Name: "Leave application/Resignation/Dismissal records", Responsible: "HR", Timing: ""},
	{Number: "137", Category: "HR Management", Level: "2. ADVANCED", Name: "Severance/termination allowance policy and records", Responsible: "HR", Timing: ""},
	{Number: "138", Category: "HR Management", Level: "2. ADVANCED", Name: "Disciplinary policies/procedures/notices/records + warning letters", Responsible: "HR", Timing: ""},
	{Number: "139", Category: "HR Management", Level: "2. ADVANCED", Name: "List returning from maternity leave", Responsible: "HR", Timing: ""},
	{Number: "140", Category: "HR Management", Level: "2. ADVANCED", Name: "Dismissal procedure", Responsible: "HR", Timing: ""},
	{Number: "141", Category: "HR Management", Level: "2. ADVANCED", Name: "List & management policy for young workers", Responsible: "HR", Timing: ""},
	{Number: "142", Category: "HR Management", Level: "2. ADVANCED", Name: "List & management policy for apprentice", Responsible: "HR", Timing: ""},
	{Number: "143", Category: "HR Management", Level: "2. ADVANCED", Name: "List & management policy for pregnant and breastfeeding women", Responsible: "HR", Timing: ""},
	{Number: "144", Category: "HR Management", Level: "2. ADVANCED", Name: "Employee training/communication/records", Responsible: "HR", Timing: ""},
	{Number: "145", Category: "HR Management", Level: "2. ADVANCED", Name: "Human TO, accidents, absenteeism rate, sick-leave days", Responsible: "HR", Timing: ""},
	{Number: "146", Category: "HR Management", Level: "2. ADVANCED", Name: "Annual leave records", Responsible: "HR", Timing: ""},
	{Number: "147", Category: "HR Management", Level: "2. ADVANCED", Name: "Non-discrimination policy", Responsible: "HR", Timing: ""},
	{Number: "148", Category: "HR Management", Level: "2. ADVANCED", Name: "Procedure against harassment and abuse", Responsible: "HR", Timing: ""},
	{Number: "149", Category: "HR Management", Level: "3. EXCELLENCE", Name: "Equal opportunities & inclusion program evidence", Responsible: "HR", Timing: ""},
	{Number: "150", Category: "HR Management", Level: "3. EXCELLENCE", Name: "Community investment program evidence", Responsible: "HR", Timing: ""},
	// Management of SA
	{Number: "M1", Category: "Management of SA", Level: "0. UNACCEPTABLE", Name: "Decathlon MSA Contract signed (Appendix 1 showing production sites)", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "151", Category: "Management of SA", Level: "1. CONSOLIDATED", Name: "CAP follow-up meetings and records", Responsible: "H&S/MANAGEMENT", Timing: ""},
	{Number: "152", Category: "Management of SA", Level: "1. CONSOLIDATED", Name: "Decathlon Code of Conduct (SIGNED)", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "153", Category: "Management of SA", Level: "2. ADVANCED", Name: "HRP internal assessment procedure", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "154", Category: "Management of SA", Level: "2. ADVANCED", Name: "Last self assessment report", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "155", Category: "Management of SA", Level: "2. ADVANCED", Name: "System details for regularly reviewing/updating/improving strategies", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "156", Category: "Management of SA", Level: "2. ADVANCED", Name: "List of service subcontractors on site + contracts + working hours + wages", Responsible: "H&S/MANAGEMENT", Timing: ""},
	{Number: "157", Category: "Management of SA", Level: "2. ADVANCED", Name: "Supplier list of their suppliers involved Decathlon orders", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "158", Category: "Management of SA", Level: "2. ADVANCED", Name: "Policy of those supplier management (RANK2)", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "159", Category: "Management of SA", Level: "3. EXCELLENCE", Name: "Social sustainability strategy and targets", Responsible: "MANAGEMENT", Timing: ""},
	{Number: "160", Category: "Management of SA", Level: "3. EXCELLENCE", Name: "Stakeholder initiatives participation evidence", Responsible: "MANAGEMENT", Timing: ""},
	// Permits
	{Number: "85", Category: "Permits Topics", Level: "", Name: "Fire Safety Permit", Responsible: "H&S", Timing: ""},
	{Number: "86p", Category: "Permits Topics", Level: "", Name: "Electrical Permit", Responsible: "H&S", Timing: ""},
	{Number: "87p", Category: "Permits Topics", Level: "", Name: "Equipment Machinery (boiler, lift, etc…) Permit", Responsible: "H&S", Timing: ""},
	{Number: "88p", Category: "Permits Topics", Level: "", Name: "Structural Integrity (Building / Occupancy)", Responsible: "H&S", Timing: ""},
	{Number: "89p", Category: "Permits Topics", Level: "", Name: "License of hygiene parties", Responsible: "H&S", Timing: ""},
	{Number: "90p", Category: "Permits Topics", Level: "", Name: "Air Emissions Permit", Responsible: "H&S", Timing: ""},
	{Number: "91p", Category: "Permits Topics", Level: "", Name: "Water Source Permit", Responsible: "H&S", Timing: ""},
	{Number: "92p", Category: "Permits Topics", Level: "", Name: "Solid Waste Permit", Responsible: "H&S", Timing: ""},
	{Number: "93p", Category: "Permits Topics", Level: "", Name: "External Noise Permit", Responsible: "H&S", Timing: ""},
	{Number: "94p", Category: "Permits Topics", Level: "", Name: "Industrial Wastewater Discharge Permit", Responsible: "H&S", Timing: ""},
	{Number: "95p", Category: "Permits Topics", Level: "", Name: "Storm Water Discharge Permit", Responsible: "H&S", Timing: ""},
	{Number: "96p", Category: "Permits Topics", Level: "", Name: "Hazardous Waste Permit", Responsible: "H&S", Timing: ""},
}
